// Package creational contains the creational design-pattern demos
package creational

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Family selects which product family a team factory produces
type Family string

const (
	FamilyBank    Family = "bank"
	FamilyWebsite Family = "website"
)

// Employee is one member of a project team
type Employee interface {
	Describe(w io.Writer)
}

// TeamFactory creates a matched developer/tester/manager trio.
// All three always belong to the same family; callers never mix families.
type TeamFactory interface {
	CreateDeveloper() Employee
	CreateTester() Employee
	CreateManager() Employee
}

// NewTeamFactory creates the factory for the given family key
func NewTeamFactory(family Family) (TeamFactory, error) {
	switch family {
	case FamilyBank:
		return &bankTeamFactory{}, nil
	case FamilyWebsite:
		return &websiteTeamFactory{}, nil
	default:
		return nil, fmt.Errorf("unknown team family: %s", family)
	}
}

type bankTeamFactory struct{}

func (f *bankTeamFactory) CreateDeveloper() Employee { return &bankDeveloper{} }
func (f *bankTeamFactory) CreateTester() Employee    { return &bankTester{} }
func (f *bankTeamFactory) CreateManager() Employee   { return &bankManager{} }

type bankDeveloper struct{}

func (e *bankDeveloper) Describe(w io.Writer) {
	fmt.Fprintln(w, "developer writes transaction services for the bank core")
}

type bankTester struct{}

func (e *bankTester) Describe(w io.Writer) {
	fmt.Fprintln(w, "tester audits the bank ledger reconciliation")
}

type bankManager struct{}

func (e *bankManager) Describe(w io.Writer) {
	fmt.Fprintln(w, "manager plans the bank compliance roadmap")
}

type websiteTeamFactory struct{}

func (f *websiteTeamFactory) CreateDeveloper() Employee { return &websiteDeveloper{} }
func (f *websiteTeamFactory) CreateTester() Employee    { return &websiteTester{} }
func (f *websiteTeamFactory) CreateManager() Employee   { return &websiteManager{} }

type websiteDeveloper struct{}

func (e *websiteDeveloper) Describe(w io.Writer) {
	fmt.Fprintln(w, "developer builds pages for the website frontend")
}

type websiteTester struct{}

func (e *websiteTester) Describe(w io.Writer) {
	fmt.Fprintln(w, "tester clicks through the website checkout flow")
}

type websiteManager struct{}

func (e *websiteManager) Describe(w io.Writer) {
	fmt.Fprintln(w, "manager tracks the website launch schedule")
}

// NewAbstractFactoryDemo creates the abstract-factory demo
func NewAbstractFactoryDemo() catalog.Demo {
	return catalog.New(
		"abstract-factory",
		catalog.GroupCreational,
		"Builds matched project teams per product family without mixing them",
		func(w io.Writer) {
			for _, family := range []Family{FamilyBank, FamilyWebsite} {
				factory, err := NewTeamFactory(family)
				if err != nil {
					fmt.Fprintf(w, "error: %v\n", err)
					continue
				}

				fmt.Fprintf(w, "assembling %s team\n", family)
				factory.CreateDeveloper().Describe(w)
				factory.CreateTester().Describe(w)
				factory.CreateManager().Describe(w)
			}
		},
	)
}
