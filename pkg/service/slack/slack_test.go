package slack_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	slackSvc "github.com/secmon-lab/orgchart/pkg/service/slack"
)

// fakeSlackAPI answers the two Web API methods the announcer uses
type fakeSlackAPI struct {
	mu     sync.Mutex
	posted []string
}

func (f *fakeSlackAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth.test", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"user":"orgbot","team":"acme","user_id":"U1","team_id":"T1"}`))
	})
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		f.mu.Lock()
		f.posted = append(f.posted, r.Form.Get("channel"))
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000100"}`))
	})
	return mux
}

func TestServiceAgainstSlackAPI(t *testing.T) {
	api := &fakeSlackAPI{}
	ts := httptest.NewServer(api.handler())
	defer ts.Close()

	svc := slackSvc.New("xoxb-test", slackSvc.WithAPIURL(ts.URL+"/"))
	ctx := context.Background()

	t.Run("auth test returns the bot identity", func(t *testing.T) {
		resp, err := svc.AuthTestContext(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, resp.User, "orgbot")
		gt.Equal(t, resp.Team, "acme")
	})

	t.Run("announcer posts through the service", func(t *testing.T) {
		announcer := slackSvc.NewAnnouncer(svc, "C123")
		gt.NoError(t, announcer.Verify(ctx))

		err := announcer.AnnounceMove(ctx, employee("9", "Ivy Taylor"), employee("7", "Grace Wilson"), employee("2", "Bob Smith"))
		gt.NoError(t, err).Required()

		api.mu.Lock()
		defer api.mu.Unlock()
		gt.Equal(t, api.posted, []string{"C123"})
	})
}

func TestServiceRejectedToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"invalid_auth"}`))
	}))
	defer ts.Close()

	svc := slackSvc.New("xoxb-bad", slackSvc.WithAPIURL(ts.URL+"/"))
	_, err := svc.AuthTestContext(context.Background())
	gt.Error(t, err)

	gt.Error(t, slackSvc.NewAnnouncer(svc, "C123").Verify(context.Background()))
}
