package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"coach/config"
	"coach/internal/domain/entity"
	"coach/internal/errors"
	"coach/internal/infra/tokenstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const signinForm = `<form method="post"><input type="hidden" name="_csrf" value="csrf-abc"/></form>`

type fakeConnect struct {
	server       *httptest.Server
	signinResult string
	summaryHits  atomic.Int32
	summary      func(w http.ResponseWriter)
	lastAuth     atomic.Value
	postedForm   atomic.Value
}

func newFakeConnect(t *testing.T) *fakeConnect {
	t.Helper()

	fake := &fakeConnect{
		signinResult: `<html><head><title>Success</title></head>` +
			`<script>var url = "https://example.test/sso/embed?ticket=ST-123-abc";</script></html>`,
		summary: func(w http.ResponseWriter) {
			fmt.Fprint(w, `{"calendarDate":"2026-10-14","restingHeartRate":52,"bodyBatteryMostRecentValue":71}`)
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sso/embed", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "GARMIN-SSO", Value: "1", Path: "/"})
		fmt.Fprint(w, "<html></html>")
	})
	mux.HandleFunc("GET /sso/signin", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, signinForm)
	})
	mux.HandleFunc("POST /sso/signin", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		fake.postedForm.Store(r.PostForm.Encode())
		fmt.Fprint(w, fake.signinResult)
	})
	mux.HandleFunc("POST /exchange", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("ticket") != "ST-123-abc" {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		fmt.Fprint(w, `{"access_token":"access-1","refresh_token":"refresh-1","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("GET /api/userprofile-service/socialProfile", func(w http.ResponseWriter, r *http.Request) {
		fake.lastAuth.Store(r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"displayName":"runner-42","fullName":"Jamie Runner"}`)
	})
	mux.HandleFunc("GET /api/usersummary-service/usersummary/daily/runner-42", func(w http.ResponseWriter, _ *http.Request) {
		fake.summaryHits.Add(1)
		fake.summary(w)
	})
	mux.HandleFunc("GET /api/wellness-service/wellness/dailySleepData/runner-42", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("date") != "2026-10-14" {
			fmt.Fprint(w, `{"dailySleepDTO":{"sleepTimeSeconds":null}}`)

			return
		}
		fmt.Fprint(w, `{"dailySleepDTO":{"calendarDate":"2026-10-14","sleepTimeSeconds":27000}}`)
	})
	mux.HandleFunc("GET /api/metrics-service/metrics/trainingreadiness/2026-10-14", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"score":68,"level":"MODERATE"}]`)
	})
	mux.HandleFunc("GET /api/activitylist-service/activities/search/activities", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("start"))
		assert.Equal(t, "14", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `[{"activityName":"Morning Run","startTimeLocal":"2026-10-14 07:00:00","duration":1800.0,"activityType":{"typeKey":"running"}}]`)
	})

	fake.server = httptest.NewServer(mux)
	t.Cleanup(fake.server.Close)

	return fake
}

func (f *fakeConnect) factory(breakerCfg config.BreakerConfig) *clientFactory {
	cfg := config.GarminConfig{
		SSOURL:      f.server.URL + "/sso/",
		APIURL:      f.server.URL + "/api",
		ExchangeURL: f.server.URL + "/exchange",
		UserAgent:   "coach-test",
		Timeout:     5 * time.Second,
		Breaker:     breakerCfg,
	}

	return newClientFactory(cfg, f.server.Client().Transport, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var testCreds = entity.Credentials{Email: "jamie@example.com", Password: "hunter2"}

func TestLogin_Success(t *testing.T) {
	fake := newFakeConnect(t)
	factory := fake.factory(config.BreakerConfig{})
	ctx := context.Background()

	client, err := factory.Login(ctx, testCreds)
	require.NoError(t, err)

	assert.Equal(t, "Bearer access-1", fake.lastAuth.Load())
	assert.Contains(t, fake.postedForm.Load(), "_csrf=csrf-abc")
	assert.Contains(t, fake.postedForm.Load(), "username=jamie%40example.com")

	name, err := client.FullName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jamie Runner", name)

	summary, err := client.UserSummary(ctx, "2026-10-14")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 52, *summary.RestingHeartRate)
	assert.Equal(t, 71, *summary.BodyBatteryMostRecentValue)
	assert.Nil(t, summary.AverageStressLevel)

	sleep, err := client.SleepData(ctx, "2026-10-14")
	require.NoError(t, err)
	require.NotNil(t, sleep.DailySleepDTO)
	assert.Equal(t, 27000, *sleep.DailySleepDTO.SleepTimeSeconds)

	readiness, err := client.TrainingReadiness(ctx, "2026-10-14")
	require.NoError(t, err)
	require.Len(t, readiness, 1)
	assert.Equal(t, 68, *readiness[0].Score)

	activities, err := client.Activities(ctx, 0, 14)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "running", activities[0].ActivityType.TypeKey)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	fake := newFakeConnect(t)
	fake.signinResult = `<html><head><title>GARMIN Authentication Application</title></head></html>`

	_, err := fake.factory(config.BreakerConfig{}).Login(context.Background(), testCreds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLogin_MFARequired(t *testing.T) {
	fake := newFakeConnect(t)
	fake.signinResult = `<html><head><title>Enter MFA code for login</title></head></html>`

	_, err := fake.factory(config.BreakerConfig{}).Login(context.Background(), testCreds)
	assert.True(t, errors.Is(err, ErrMFARequired))
}

func TestDumpAndResume(t *testing.T) {
	fake := newFakeConnect(t)
	factory := fake.factory(config.BreakerConfig{})
	ctx := context.Background()
	store := tokenstore.NewDir(t.TempDir() + "/tokens")

	client, err := factory.Login(ctx, testCreds)
	require.NoError(t, err)
	require.NoError(t, client.Dump(ctx, store))
	assert.True(t, store.Exists(ctx))

	fake.lastAuth.Store("")
	resumed, err := factory.Resume(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-1", fake.lastAuth.Load())

	name, err := resumed.FullName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jamie Runner", name)
}

func TestResume_ExpiredToken(t *testing.T) {
	fake := newFakeConnect(t)
	ctx := context.Background()
	store := tokenstore.NewDir(t.TempDir())

	data, err := json.Marshal(&oauth2.Token{AccessToken: "old", Expiry: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	require.NoError(t, store.WriteFile(ctx, tokenFile, data))

	_, err = fake.factory(config.BreakerConfig{}).Resume(ctx, store)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}

func TestResume_MissingToken(t *testing.T) {
	fake := newFakeConnect(t)

	_, err := fake.factory(config.BreakerConfig{}).Resume(context.Background(), tokenstore.NewDir(t.TempDir()))
	assert.True(t, errors.Is(err, tokenstore.ErrTokenNotFound))
}

func TestGetJSON_NoContent(t *testing.T) {
	for name, respond := range map[string]func(w http.ResponseWriter){
		"204":  func(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) },
		"null": func(w http.ResponseWriter) { fmt.Fprint(w, "null") },
	} {
		t.Run(name, func(t *testing.T) {
			fake := newFakeConnect(t)
			fake.summary = respond

			client, err := fake.factory(config.BreakerConfig{}).Login(context.Background(), testCreds)
			require.NoError(t, err)

			summary, err := client.UserSummary(context.Background(), "2026-10-14")
			require.NoError(t, err)
			assert.Nil(t, summary)
		})
	}
}

func TestGetJSON_StatusError(t *testing.T) {
	fake := newFakeConnect(t)
	fake.summary = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"not found"}`)
	}

	client, err := fake.factory(config.BreakerConfig{}).Login(context.Background(), testCreds)
	require.NoError(t, err)

	_, err = client.UserSummary(context.Background(), "2026-10-14")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "not found")
}

func TestBreaker_OpensOnServerErrors(t *testing.T) {
	fake := newFakeConnect(t)
	fake.summary = func(w http.ResponseWriter) { w.WriteHeader(http.StatusBadGateway) }

	factory := fake.factory(config.BreakerConfig{Enabled: true, FailureThreshold: 2, Timeout: time.Minute})
	client, err := factory.Login(context.Background(), testCreds)
	require.NoError(t, err)

	for range 2 {
		_, err := client.UserSummary(context.Background(), "2026-10-14")
		require.Error(t, err)
	}

	_, err = client.UserSummary(context.Background(), "2026-10-14")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit open")
	assert.Equal(t, int32(2), fake.summaryHits.Load())
}

func TestBreaker_IgnoresClientErrors(t *testing.T) {
	fake := newFakeConnect(t)
	fake.summary = func(w http.ResponseWriter) { w.WriteHeader(http.StatusNotFound) }

	factory := fake.factory(config.BreakerConfig{Enabled: true, FailureThreshold: 1, Timeout: time.Minute})
	client, err := factory.Login(context.Background(), testCreds)
	require.NoError(t, err)

	for range 3 {
		_, err := client.UserSummary(context.Background(), "2026-10-14")
		require.Error(t, err)
	}
	assert.Equal(t, int32(3), fake.summaryHits.Load())
}
