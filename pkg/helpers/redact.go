package helpers

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Redaction is the marker substituted for sensitive values in log lines.
const Redaction = "***"

// PIIFields are the field names redacted by default.
var PIIFields = []string{"email", "ssn", "password"}

// FilterDatum obfuscates the values of the given fields in a message of
// `field=value` pairs separated by separator. Only a field occurrence at
// the start of the message or immediately after the separator matches, and
// only up to the next separator; field names and surrounding structure are
// left intact.
func FilterDatum(fields []string, redaction, message, separator string) string {
	if len(fields) == 0 {
		return message
	}
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = regexp.QuoteMeta(f)
	}
	sep := regexp.QuoteMeta(separator)
	re := regexp.MustCompile(`(^|` + sep + `)(` + strings.Join(quoted, "|") + `)=[^` + sep + `]*`)
	return re.ReplaceAllString(message, `${1}${2}=`+redaction)
}

// RedactingFormatter wraps a logrus formatter and scrubs sensitive
// values before they reach the rendered line. Structured fields named in
// Fields are replaced in entry.Data, so the substitution holds for the
// text and the JSON formatter alike; the message itself is additionally
// run through FilterDatum for `field=value` payloads separated by
// Separator.
type RedactingFormatter struct {
	Inner     logrus.Formatter
	Fields    []string
	Separator string
}

func NewRedactingFormatter(inner logrus.Formatter, fields []string) *RedactingFormatter {
	return &RedactingFormatter{Inner: inner, Fields: fields, Separator: ";"}
}

func (f *RedactingFormatter) Format(e *logrus.Entry) ([]byte, error) {
	// Work on a copy; the entry may be reused by the caller.
	cp := *e
	cp.Data = make(logrus.Fields, len(e.Data))
	for k, v := range e.Data {
		cp.Data[k] = v
	}
	for _, field := range f.Fields {
		if _, ok := cp.Data[field]; ok {
			cp.Data[field] = Redaction
		}
	}
	cp.Message = FilterDatum(f.Fields, Redaction, e.Message, f.Separator)

	return f.Inner.Format(&cp)
}
