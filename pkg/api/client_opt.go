package api

import (
	"net/http"
)

type oauth2Opt struct {
	token string
}

// OAuth2 authorizes the request with a token of the given scheme, for
// example OAuth2("Bot", botToken) or OAuth2("Bearer", accessToken).
func OAuth2(scheme, token string) *oauth2Opt {
	return &oauth2Opt{token: scheme + " " + token}
}

func (opt *oauth2Opt) Do(client defaultClient, req *http.Request) {
	req.Header.Add("Authorization", opt.token)
}
