// Package garmin is the Garmin Connect client used by the session manager:
// SSO login, token persistence and the metric endpoints the aggregator reads.
package garmin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"coach/internal/domain/entity"
	"coach/internal/domain/service"
	"coach/internal/errors"

	"golang.org/x/oauth2"
)

const (
	tokenFile = "oauth2_token.json"

	profilePath   = "/userprofile-service/socialProfile"
	summaryPath   = "/usersummary-service/usersummary/daily/"
	sleepPath     = "/wellness-service/wellness/dailySleepData/"
	readinessPath = "/metrics-service/metrics/trainingreadiness/"
	activityPath  = "/activitylist-service/activities/search/activities"

	maxErrorBody = 512
)

var jsonNull = []byte("null")

// connectClient is an authenticated session bound to one OAuth2 token.
type connectClient struct {
	http        *http.Client
	apiURL      string
	userAgent   string
	token       *oauth2.Token
	displayName string
	breaker     *breaker
	logger      *slog.Logger
}

func (c *connectClient) FullName(ctx context.Context) (string, error) {
	profile, err := c.fetchProfile(ctx)
	if err != nil {
		return "", err
	}

	return profile.FullName, nil
}

func (c *connectClient) UserSummary(ctx context.Context, date string) (*entity.UserSummary, error) {
	var summary entity.UserSummary
	query := url.Values{"calendarDate": {date}}
	found, err := c.getJSON(ctx, summaryPath+url.PathEscape(c.displayName), query, &summary)
	if err != nil || !found {
		return nil, err
	}

	return &summary, nil
}

func (c *connectClient) SleepData(ctx context.Context, date string) (*entity.SleepData, error) {
	var sleep entity.SleepData
	query := url.Values{"date": {date}, "nonSleepBufferMinutes": {"60"}}
	found, err := c.getJSON(ctx, sleepPath+url.PathEscape(c.displayName), query, &sleep)
	if err != nil || !found {
		return nil, err
	}

	return &sleep, nil
}

func (c *connectClient) TrainingReadiness(ctx context.Context, date string) ([]entity.TrainingReadiness, error) {
	var readiness []entity.TrainingReadiness
	if _, err := c.getJSON(ctx, readinessPath+url.PathEscape(date), nil, &readiness); err != nil {
		return nil, err
	}

	return readiness, nil
}

func (c *connectClient) Activities(ctx context.Context, start, limit int) ([]entity.RawActivity, error) {
	var activities []entity.RawActivity
	query := url.Values{"start": {strconv.Itoa(start)}, "limit": {strconv.Itoa(limit)}}
	if _, err := c.getJSON(ctx, activityPath, query, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}

// Dump writes the session token into store.
func (c *connectClient) Dump(ctx context.Context, store service.TokenStore) error {
	data, err := json.Marshal(c.token)
	if err != nil {
		return errors.WithStack(err)
	}

	return store.WriteFile(ctx, tokenFile, data)
}

func (c *connectClient) fetchProfile(ctx context.Context) (*entity.SocialProfile, error) {
	var profile entity.SocialProfile
	found, err := c.getJSON(ctx, profilePath, nil, &profile)
	if err != nil {
		return nil, err
	}
	if !found || profile.DisplayName == "" {
		return nil, errors.New("garmin profile has no display name")
	}

	return &profile, nil
}

// getJSON decodes the response into out. It reports false when the upstream
// answered with no content.
func (c *connectClient) getJSON(ctx context.Context, path string, query url.Values, out any) (bool, error) {
	endpoint := c.apiURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.get(ctx, endpoint)
	})
	if err != nil {
		return false, err
	}
	if body = bytes.TrimSpace(body); len(body) == 0 || bytes.Equal(body, jsonNull) {
		return false, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return false, errors.Wrapf(err, "decode %s", path)
	}

	return true, nil
}

func (c *connectClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build garmin request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call garmin connect")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read garmin response")
	}

	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		c.logger.Debug("Garmin Connect returned an error",
			slog.String("url", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, &StatusError{
			Method:     req.Method,
			URL:        req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
