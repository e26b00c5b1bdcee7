package garmin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"time"

	"coach/internal/domain/entity"
	"coach/internal/errors"

	"golang.org/x/oauth2"
)

var (
	csrfPattern   = regexp.MustCompile(`name="_csrf"\s+value="(.+?)"`)
	titlePattern  = regexp.MustCompile(`<title>(.+?)</title>`)
	ticketPattern = regexp.MustCompile(`embed\?ticket=([^"]+)"`)
)

// exchangeResponse is the OAuth2 token issued for an SSO ticket.
type exchangeResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ssoLogin walks the embedded SSO widget: load the sign-in form, post the
// credentials with its CSRF token, then trade the returned ticket for an
// OAuth2 token.
func (f *clientFactory) ssoLogin(ctx context.Context, creds entity.Credentials) (*oauth2.Token, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	sso := &http.Client{Timeout: f.cfg.Timeout, Transport: f.base.Transport, Jar: jar}

	embedURL := f.cfg.SSOURL + "/embed"
	embedParams := url.Values{
		"id":          {"gauth-widget"},
		"embedWidget": {"true"},
		"gauthHost":   {f.cfg.SSOURL},
	}
	signinParams := url.Values{
		"id":                              {"gauth-widget"},
		"embedWidget":                     {"true"},
		"gauthHost":                       {embedURL},
		"service":                         {embedURL},
		"source":                          {embedURL},
		"redirectAfterAccountLoginUrl":    {embedURL},
		"redirectAfterAccountCreationUrl": {embedURL},
	}
	signinURL := f.cfg.SSOURL + "/signin?" + signinParams.Encode()

	if _, err := f.ssoRequest(ctx, sso, http.MethodGet, embedURL+"?"+embedParams.Encode(), nil, ""); err != nil {
		return nil, errors.Wrap(err, "open sso session")
	}

	page, err := f.ssoRequest(ctx, sso, http.MethodGet, signinURL, nil, embedURL)
	if err != nil {
		return nil, errors.Wrap(err, "load sso sign-in form")
	}
	csrf := csrfPattern.FindStringSubmatch(page)
	if csrf == nil {
		return nil, errors.Wrap(ErrUnexpectedSSO, "sign-in form has no csrf token")
	}

	form := url.Values{
		"username": {creds.Email},
		"password": {creds.Password},
		"embed":    {"true"},
		"_csrf":    {csrf[1]},
	}
	page, err = f.ssoRequest(ctx, sso, http.MethodPost, signinURL, form, signinURL)
	if err != nil {
		return nil, errors.Wrap(err, "submit sso credentials")
	}

	if title := titlePattern.FindStringSubmatch(page); title == nil || title[1] != "Success" {
		if strings.Contains(page, "MFA") || (title != nil && strings.Contains(title[1], "MFA")) {
			return nil, errors.WithStack(ErrMFARequired)
		}

		return nil, errors.WithStack(ErrInvalidCredentials)
	}

	ticket := ticketPattern.FindStringSubmatch(page)
	if ticket == nil {
		return nil, errors.Wrap(ErrUnexpectedSSO, "sign-in response has no ticket")
	}

	return f.exchangeTicket(ctx, ticket[1], embedURL)
}

func (f *clientFactory) exchangeTicket(ctx context.Context, ticket, loginURL string) (*oauth2.Token, error) {
	form := url.Values{"ticket": {ticket}, "login-url": {loginURL}}
	body, err := f.ssoRequest(ctx, f.base, http.MethodPost, f.cfg.ExchangeURL, form, "")
	if err != nil {
		return nil, errors.Wrap(err, "exchange sso ticket")
	}

	var resp exchangeResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, errors.Wrap(err, "decode exchanged token")
	}
	if resp.AccessToken == "" {
		return nil, errors.Wrap(ErrUnexpectedSSO, "exchange returned no access token")
	}

	token := &oauth2.Token{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
	}
	if resp.ExpiresIn > 0 {
		token.Expiry = f.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	return token, nil
}

func (f *clientFactory) ssoRequest(ctx context.Context, client *http.Client, method, endpoint string, form url.Values, referer string) (string, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}

		return "", &StatusError{Method: method, URL: req.URL.Path, StatusCode: resp.StatusCode, Body: string(data)}
	}

	return string(data), nil
}
