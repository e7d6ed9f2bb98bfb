package creational

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Language selects a developer variant at runtime
type Language string

const (
	LanguageGo     Language = "go"
	LanguagePython Language = "python"
	LanguageRust   Language = "rust"
)

// Developer is the product of the developer factory
type Developer interface {
	WriteCode(w io.Writer)
}

type goDeveloper struct{}

func (d *goDeveloper) WriteCode(w io.Writer) {
	fmt.Fprintln(w, "go developer writes goroutines and channels")
}

type pythonDeveloper struct{}

func (d *pythonDeveloper) WriteCode(w io.Writer) {
	fmt.Fprintln(w, "python developer writes list comprehensions")
}

type rustDeveloper struct{}

func (d *rustDeveloper) WriteCode(w io.Writer) {
	fmt.Fprintln(w, "rust developer fights the borrow checker")
}

// NewDeveloper creates the developer for the given language key
func NewDeveloper(lang Language) (Developer, error) {
	switch lang {
	case LanguageGo:
		return &goDeveloper{}, nil
	case LanguagePython:
		return &pythonDeveloper{}, nil
	case LanguageRust:
		return &rustDeveloper{}, nil
	default:
		return nil, fmt.Errorf("unknown language: %s", lang)
	}
}

// NewFactoryMethodDemo creates the factory-method demo
func NewFactoryMethodDemo() catalog.Demo {
	return catalog.New(
		"factory-method",
		catalog.GroupCreational,
		"Creates developer variants from a runtime language key",
		func(w io.Writer) {
			for _, lang := range []Language{LanguageGo, LanguagePython, LanguageRust} {
				dev, err := NewDeveloper(lang)
				if err != nil {
					fmt.Fprintf(w, "error: %v\n", err)
					continue
				}
				dev.WriteCode(w)
			}
		},
	)
}
