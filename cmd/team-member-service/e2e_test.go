package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тест гоняется против запущенного сервиса: E2E_BASE_URL=http://localhost:8090 go test ./cmd/...
func TestE2E_FullFlow(t *testing.T) {
	baseURL := os.Getenv("E2E_BASE_URL")
	if baseURL == "" {
		t.Skip("E2E_BASE_URL is not set")
	}
	waitForService(t, baseURL)

	client := &http.Client{Timeout: 5 * time.Second}
	suffix := fmt.Sprintf("%d", time.Now().UnixNano()%1_000_000)

	t.Log("Step 1: Register owner and member")
	ownerToken, ownerID := register(t, client, baseURL, "owner_"+suffix)
	memberToken, memberID := register(t, client, baseURL, "member_"+suffix)

	t.Log("Step 2: Create team")
	var teamResp struct {
		Team struct {
			TeamID  string `json:"team_id"`
			OwnerID string `json:"owner_id"`
		} `json:"team"`
	}
	status := call(t, client, http.MethodPost, baseURL+"/team", ownerToken, `{"name":"gophers_e2e"}`, &teamResp)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, ownerID, teamResp.Team.OwnerID)
	teamID := teamResp.Team.TeamID

	t.Log("Step 3: Outsider cannot see members")
	status = call(t, client, http.MethodGet, baseURL+"/team/"+teamID+"/members", memberToken, "", nil)
	require.Equal(t, http.StatusForbidden, status)

	t.Log("Step 4: Owner creates invite, member accepts")
	var inviteResp struct {
		Invite struct {
			InviteID string `json:"invite_id"`
		} `json:"invite"`
	}
	status = call(t, client, http.MethodPost, baseURL+"/team/"+teamID+"/invites", ownerToken, "", &inviteResp)
	require.Equal(t, http.StatusCreated, status)

	status = call(t, client, http.MethodPost, baseURL+"/invite/"+inviteResp.Invite.InviteID+"/accept", memberToken, "", nil)
	require.Equal(t, http.StatusOK, status)

	t.Log("Step 4.1: Accepting twice fails")
	status = call(t, client, http.MethodPost, baseURL+"/invite/"+inviteResp.Invite.InviteID+"/accept", memberToken, "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	t.Log("Step 5: Members are listed owner first")
	var membersResp struct {
		Members []struct {
			UserID string `json:"user_id"`
		} `json:"members"`
	}
	status = call(t, client, http.MethodGet, baseURL+"/team/"+teamID+"/members", memberToken, "", &membersResp)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, membersResp.Members, 2)
	assert.Equal(t, ownerID, membersResp.Members[0].UserID)
	assert.Equal(t, memberID, membersResp.Members[1].UserID)

	t.Log("Step 6: Members page renders the list")
	req, err := http.NewRequest(http.MethodGet, baseURL+"/team/"+teamID+"/members/view", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+memberToken)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := string(body)
	assert.Contains(t, page, "Members")
	assert.Contains(t, page, "Invite Member")
	if strings.Contains(page, `data-state="ready"`) {
		assert.Contains(t, page, `data-key="`+ownerID+`"`)
		assert.Contains(t, page, `data-key="`+memberID+`"`)
	}

	t.Log("Step 7: Owner deletes the team")
	status = call(t, client, http.MethodDelete, baseURL+"/team/"+teamID, ownerToken, "", nil)
	require.Equal(t, http.StatusNoContent, status)
	status = call(t, client, http.MethodGet, baseURL+"/team/"+teamID, ownerToken, "", nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func register(t *testing.T, client *http.Client, baseURL, username string) (string, string) {
	t.Helper()

	var resp struct {
		Token string `json:"token"`
		User  struct {
			UserID string `json:"user_id"`
		} `json:"user"`
	}
	body := fmt.Sprintf(`{"username":%q,"password":"password123"}`, username)
	status := call(t, client, http.MethodPost, baseURL+"/auth/register", "", body, &resp)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.UserID
}

func call(t *testing.T, client *http.Client, method, url, token, body string, out any) int {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func waitForService(t *testing.T, baseURL string) {
	t.Log("Waiting for service to start...")
	timeout := time.After(60 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatal("Service did not start in time")
		case <-ticker.C:
			resp, err := http.Get(baseURL + "/health")
			if err == nil {
				resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					t.Log("Service is UP!")
					return
				}
			}
		}
	}
}
