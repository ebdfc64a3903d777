package main

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/dileep-u-k/restaurant-chatbot/internal/api"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chromePath finds a Chrome binary for the browser tests. CHROME_PATH wins
// over the usual install names.
func chromePath() string {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		return p
	}
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell", "chrome"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}

// newWidgetBrowser serves the router over a real listener and opens it in
// headless Chrome. The test is skipped when no Chrome binary is installed.
func newWidgetBrowser(t *testing.T, replier *fakeReplier) context.Context {
	t.Helper()
	if testing.Short() {
		t.Skip("browser test skipped in short mode")
	}
	path := chromePath()
	if path == "" {
		t.Skip("chrome not found; set CHROME_PATH to run browser tests")
	}

	srv := httptest.NewServer(newRouter(NewChatHandler(replier, testLogger), testLogger))
	t.Cleanup(srv.Close)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(path),
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, ctxCancel := chromedp.NewContext(allocCtx)
	ctx, timeoutCancel := context.WithTimeout(ctx, 30*time.Second)
	t.Cleanup(func() {
		timeoutCancel()
		ctxCancel()
		allocCancel()
	})

	require.NoError(t, chromedp.Run(ctx,
		chromedp.Navigate(srv.URL+"/"),
		chromedp.WaitVisible("#user-input", chromedp.ByQuery),
	))
	return ctx
}

// send types text into the widget and presses the send button.
func send(text string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.SetValue("#user-input", text, chromedp.ByQuery),
		chromedp.Click("#send-button", chromedp.ByQuery),
	}
}

// bubble is one rendered chat message, oldest first.
type bubble struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// The history is a column-reverse box with the newest node first, so the
// DOM order is reversed to get the conversation order.
const readHistory = `Array.from(document.querySelectorAll('#chat-history .message'))
	.reverse()
	.map(el => ({
		sender: el.classList.contains('user-message') ? 'user' : 'bot',
		text: el.textContent,
	}))`

func TestWidget_SendShowsUserThenBotAndClearsInput(t *testing.T) {
	replier := &fakeReplier{resp: api.ChatResponse{Source: api.SourceTool, Answer: "Masala Dosa (₹80)"}}
	ctx := newWidgetBrowser(t, replier)

	var history []bubble
	var input string
	require.NoError(t, chromedp.Run(ctx,
		send("breakfast menu"),
		chromedp.WaitVisible("#chat-history .bot-message", chromedp.ByQuery),
		chromedp.Evaluate(readHistory, &history),
		chromedp.Value("#user-input", &input, chromedp.ByQuery),
	))

	assert.Equal(t, []bubble{
		{Sender: "user", Text: "breakfast menu"},
		{Sender: "bot", Text: "Masala Dosa (₹80)"},
	}, history)
	assert.Empty(t, input)
	assert.Equal(t, []string{"breakfast menu"}, replier.Calls())
}

func TestWidget_BlankInputSendsNothing(t *testing.T) {
	replier := &fakeReplier{resp: api.ChatResponse{Source: api.SourceGemini, Answer: "unused"}}
	ctx := newWidgetBrowser(t, replier)

	var count int
	require.NoError(t, chromedp.Run(ctx,
		send("   \t "),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.Evaluate(`document.querySelectorAll('#chat-history .message').length`, &count),
	))

	assert.Zero(t, count)
	assert.Empty(t, replier.Calls())
}

func TestWidget_FailuresShowApology(t *testing.T) {
	tests := []struct {
		name  string
		setup chromedp.Action
		want  string
	}{
		{
			name:  "server error",
			setup: chromedp.ActionFunc(func(context.Context) error { return nil }),
			want:  "Oops! Server error, please try again later.",
		},
		{
			name:  "network failure",
			setup: chromedp.Evaluate(`window.fetch = () => Promise.reject(new TypeError("Failed to fetch")); true`, nil),
			want:  "Network error. Please check your connection.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replier := &fakeReplier{err: errors.New("model unavailable")}
			ctx := newWidgetBrowser(t, replier)

			var history []bubble
			require.NoError(t, chromedp.Run(ctx,
				tt.setup,
				send("hello"),
				chromedp.WaitVisible("#chat-history .bot-message", chromedp.ByQuery),
				chromedp.Evaluate(readHistory, &history),
			))

			assert.Equal(t, []bubble{
				{Sender: "user", Text: "hello"},
				{Sender: "bot", Text: tt.want},
			}, history)
		})
	}
}
