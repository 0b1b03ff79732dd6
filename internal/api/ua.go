package api

import (
	"net/http"
	"regexp"

	"github.com/mnhtran/festive/internal/holiday"
)

// mobileUA matches the user agents of phone and tablet browsers.
var mobileUA = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// requestEnv derives a display environment from the request. Mobile
// clients count as compact; a truthy "reduced" query parameter stands in
// for the reduced-motion preference, which never crosses the wire on its
// own.
func requestEnv(r *http.Request) holiday.Environment {
	reduced := false
	switch r.URL.Query().Get("reduced") {
	case "1", "true", "yes":
		reduced = true
	}
	return holiday.StaticEnv{
		Compact: mobileUA.MatchString(r.UserAgent()),
		Reduced: reduced,
	}
}
