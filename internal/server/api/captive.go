package api

import (
	"net"
	"net/http"
	"strings"
)

// CaptiveProbePaths are the connectivity checks issued by common client
// platforms right after joining a network. They get the configuration page
// itself, never a redirect.
var CaptiveProbePaths = []string{
	"/generate_204",              // Android
	"/gen_204",                   // Android, Chrome OS
	"/hotspot-detect.html",       // Apple
	"/library/test/success.html", // Apple, older releases
	"/connecttest.txt",           // Windows 10+
	"/ncsi.txt",                  // Windows
	"/redirect",                  // Windows
	"/canonical.html",            // Firefox
	"/success.txt",               // Firefox
}

// IsProbePath reports whether path is one of CaptiveProbePaths.
func IsProbePath(path string) bool {
	p := normalizePath(path)
	for _, probe := range CaptiveProbePaths {
		if p == probe {
			return true
		}
	}
	return false
}

// IsForeignHost reports whether a request addressed to host (as found in the
// Host header, port optional) must be redirected to the access point.
// The access point's own address and any IP literal are served.
func IsForeignHost(host, apAddress string) bool {
	h := host
	if hh, _, err := net.SplitHostPort(host); err == nil {
		h = hh
	}
	h = strings.Trim(h, "[]")
	if h == "" || strings.EqualFold(h, apAddress) {
		return false
	}
	return net.ParseIP(h) == nil
}

// PortalURL is where captive clients are sent.
func PortalURL(apAddress string) string {
	return "http://" + apAddress + "/"
}

func redirectToPortal(w http.ResponseWriter, apAddress string) {
	w.Header().Set("Location", PortalURL(apAddress))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusFound)
}
