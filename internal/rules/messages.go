package rules

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// bound formats a limit without digit grouping, so 1024 never reads "1,024".
func bound(n int64) number.Formatter {
	return number.Decimal(n, number.NoSeparator())
}

func notANumber() string {
	return printer.Sprintf("Must be a number")
}

func atLeast(n int64) string {
	return printer.Sprintf("Must be at least %v", bound(n))
}

func atMost(n int64) string {
	return printer.Sprintf("Must be at most %v", bound(n))
}

func atLeastChars(n int64) string {
	return printer.Sprintf("Must be at least %v characters", bound(n))
}

func atMostChars(n int64) string {
	return printer.Sprintf("Must be at most %v characters", bound(n))
}
