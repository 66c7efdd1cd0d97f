package dingsdk

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextNotify(t *testing.T) {
	notify := NewTextNotify("create account: done")
	assert.Equal(t, "text", notify.MsgType)
	assert.Equal(t, "create account: done", notify.Text.Content)
	assert.False(t, notify.At.IsAtAll)
}

func TestNotify(t *testing.T) {
	var received DingNotify
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.Write([]byte(`{"errcode":0,"errmsg":"ok"}`))
	}))
	defer server.Close()

	sdk := NewDingSdk(server.URL)
	result, err := sdk.Notify(NewTextNotify("payer balance is low"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.ErrCode)
	assert.Equal(t, "text", received.MsgType)
	assert.Equal(t, "payer balance is low", received.Text.Content)
}

func TestNotifyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errcode":310000,"errmsg":"keywords not in content"}`))
	}))
	defer server.Close()

	sdk := NewDingSdk(server.URL)
	_, err := sdk.Notify(NewTextNotify("whatever"))
	require.Error(t, err)
}
