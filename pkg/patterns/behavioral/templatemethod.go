package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// otpChannel supplies the channel-specific steps of the OTP flow
type otpChannel interface {
	GenerateCode() string
	SaveCode(w io.Writer, code string)
	Deliver(w io.Writer, code string)
}

// otpSender owns the invariant flow; channels only fill in the steps
type otpSender struct {
	channel otpChannel
}

func (s *otpSender) SendOTP(w io.Writer) {
	code := s.channel.GenerateCode()
	s.channel.SaveCode(w, code)
	s.channel.Deliver(w, code)
	fmt.Fprintln(w, "OTP flow complete")
}

type smsOTP struct{}

func (o *smsOTP) GenerateCode() string { return "1234" }

func (o *smsOTP) SaveCode(w io.Writer, code string) {
	fmt.Fprintf(w, "saving SMS code %s to cache\n", code)
}

func (o *smsOTP) Deliver(w io.Writer, code string) {
	fmt.Fprintf(w, "texting code %s to user\n", code)
}

type emailOTP struct{}

func (o *emailOTP) GenerateCode() string { return "9876" }

func (o *emailOTP) SaveCode(w io.Writer, code string) {
	fmt.Fprintf(w, "saving email code %s to cache\n", code)
}

func (o *emailOTP) Deliver(w io.Writer, code string) {
	fmt.Fprintf(w, "emailing code %s to user\n", code)
}

// NewTemplateMethodDemo creates the template-method demo
func NewTemplateMethodDemo() catalog.Demo {
	return catalog.New(
		"template-method",
		catalog.GroupBehavioral,
		"Fixes the OTP flow while channels supply the individual steps",
		func(w io.Writer) {
			for _, channel := range []otpChannel{&smsOTP{}, &emailOTP{}} {
				sender := &otpSender{channel: channel}
				sender.SendOTP(w)
			}
		},
	)
}
