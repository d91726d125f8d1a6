package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var callIDRegex = regexp.MustCompile(`^[A-Za-z0-9._:@-]{1,128}$`)

func init() {
	MustRegisterGin("callid", ValidateCallID)
	MustRegisterGinAlias("eventtype",
		"oneof=incoming answered accepted hangup dtmf end_play end_record conf_overlay_expired info alarm stream keepalive")
	MustRegisterGinAlias("keypad", "len=1,oneof=0 1 2 3 4 5 6 7 8 9 A B C D E F G # *")
}

// ValidateCallID accepts media server resource ids: 1-128 characters of
// letters, digits and . _ : @ -
func ValidateCallID(fl validator.FieldLevel) bool {
	return callIDRegex.MatchString(fl.Field().String())
}
