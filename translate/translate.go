// Package translate formats user visible messages for the current locale.
//
// The printer follows the process locale unless SetLanguage picks one.
// Sentinel errors are formatted once, at package initialization; errors that
// carry values are formatted when they are printed.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	FALLBACK_LANGUAGE = "en-US"
)

var (
	lock    sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("smallreg: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{FALLBACK_LANGUAGE}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage selects the message language by BCP 47 tag, e.g. "de-CH".
func SetLanguage(name string) (err error) {
	tag, err := language.Parse(name)
	if err != nil {
		return
	}

	lock.Lock()
	defer lock.Unlock()
	printer = message.NewPrinter(tag)
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	lock.RLock()
	defer lock.RUnlock()
	return printer.Sprintf(key, args...)
}
