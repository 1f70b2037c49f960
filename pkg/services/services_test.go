package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newnancity/nanmanager/pkg/models"
	"github.com/newnancity/nanmanager/pkg/transport"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any
}

// fakeAPI serves canned envelopes keyed by "METHOD /path" and records every
// request it receives.
type fakeAPI struct {
	mu       sync.Mutex
	routes   map[string]string
	requests []recordedRequest
}

func envelope(data string) string {
	return `{"code":0,"message":"success","data":` + data + `,"request_id":"req-1"}`
}

func newFakeAPI(t *testing.T, routes map[string]string) (*fakeAPI, *transport.Client) {
	t.Helper()

	api := &fakeAPI{routes: routes}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
		}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			assert.NoError(t, json.Unmarshal(data, &rec.Body))
		}

		api.mu.Lock()
		api.requests = append(api.requests, rec)
		body, ok := api.routes[r.Method+" "+r.URL.Path]
		api.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":5,"message":"not found","request_id":"abc"}`))
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	cfg := transport.NewConfig(server.URL, "test-token")
	cfg.Logger = hclog.NewNullLogger()
	cfg.MaxRetries = 0

	client, err := transport.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return api, client
}

func (a *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	a.mu.Lock()
	defer a.mu.Unlock()
	require.NotEmpty(t, a.requests)
	return a.requests[len(a.requests)-1]
}

const playerJSON = `{"id":1,"name":"Steve","in_qq_group":false,"in_qq_guild":false,"in_discord":true,"ban_mode":0,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}`

func TestPlayerService(t *testing.T) {
	ctx := context.Background()
	api, client := newFakeAPI(t, map[string]string{
		"GET /api/v1/players":          envelope(`{"players":[` + playerJSON + `],"total":1,"page":2,"page_size":10}`),
		"POST /api/v1/players":         envelope(playerJSON),
		"GET /api/v1/players/1":        envelope(playerJSON),
		"PUT /api/v1/players/1":        envelope(playerJSON),
		"DELETE /api/v1/players/1":     envelope(`null`),
		"POST /api/v1/players/1/ban":   envelope(`null`),
		"POST /api/v1/players/1/unban": `{"code":0,"message":"success","request_id":"req-1"}`,
		"POST /api/v1/players/validate": envelope(`{"results":[{"player_name":"Steve","allowed":true,"player_id":1,"newbie":false},` +
			`{"player_name":"Griefer","allowed":false,"reason":"banned","newbie":false,"ban_mode":2}],"processed_at":1709296200}`),
	})
	players := NewPlayerService(client)

	t.Run("List", func(t *testing.T) {
		page := NewPageOptions(2, 10)
		mode := models.BanModeNormal
		data, err := players.List(ctx, &ListPlayersOptions{PageOptions: page, BanMode: &mode, Search: models.Ptr("ste")})
		require.NoError(t, err)
		require.Len(t, data.Items(), 1)
		assert.Equal(t, "Steve", data.Players[0].Name)
		assert.Equal(t, 2, data.Page)

		req := api.last(t)
		assert.Equal(t, url.Values{"page": {"2"}, "page_size": {"10"}, "ban_mode": {"0"}, "search": {"ste"}}, req.Query)
	})

	t.Run("List without options", func(t *testing.T) {
		_, err := players.List(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, api.last(t).Query)
	})

	t.Run("Create", func(t *testing.T) {
		player, err := players.Create(ctx, models.CreatePlayerRequest{Name: "X"})
		require.NoError(t, err)
		assert.Equal(t, 1, player.ID)

		assert.Equal(t, map[string]any{
			"name":        "X",
			"in_qq_group": false,
			"in_qq_guild": false,
			"in_discord":  false,
		}, api.last(t).Body)
	})

	t.Run("Get", func(t *testing.T) {
		player, err := players.Get(ctx, 1)
		require.NoError(t, err)
		assert.True(t, player.InDiscord)
	})

	t.Run("Get missing", func(t *testing.T) {
		_, err := players.Get(ctx, 999999)
		apiErr, ok := transport.AsAPIError(err)
		require.True(t, ok, "expected APIError, got %v", err)
		assert.Equal(t, 5, apiErr.Code)
		assert.Equal(t, "not found", apiErr.Message)
		assert.Equal(t, "abc", apiErr.RequestID)
	})

	t.Run("Update", func(t *testing.T) {
		_, err := players.Update(ctx, 1, models.UpdatePlayerRequest{QQ: models.Ptr("")})
		require.NoError(t, err)
		req := api.last(t)
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, map[string]any{"qq": ""}, req.Body)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, players.Delete(ctx, 1))
		assert.Equal(t, http.MethodDelete, api.last(t).Method)
	})

	t.Run("Ban", func(t *testing.T) {
		err := players.Ban(ctx, 1, models.BanPlayerRequest{
			BanMode:         models.BanModeTemporary,
			DurationSeconds: models.Ptr(int64(3600)),
			Reason:          "spam",
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"ban_mode":         float64(1),
			"duration_seconds": float64(3600),
			"reason":           "spam",
		}, api.last(t).Body)
	})

	t.Run("Unban", func(t *testing.T) {
		require.NoError(t, players.Unban(ctx, 1))
		assert.Equal(t, "/api/v1/players/1/unban", api.last(t).Path)
	})

	t.Run("Validate", func(t *testing.T) {
		resp, err := players.Validate(ctx, models.ValidateRequest{
			Players:  []models.PlayerValidateInfo{{PlayerName: "Steve", IP: "203.0.113.7"}, {PlayerName: "Griefer", IP: "203.0.113.8"}},
			ServerID: 3,
			Login:    true,
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 2)
		assert.True(t, resp.Results[0].Allowed)
		assert.False(t, resp.Results[1].Allowed)
		require.NotNil(t, resp.Results[1].BanMode)
		assert.Equal(t, models.BanModePermanent, *resp.Results[1].BanMode)
	})
}

func TestServerService(t *testing.T) {
	ctx := context.Background()
	server := `{"id":4,"name":"survival","address":"mc.example.com:25565","server_type":"minecraft","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}`
	api, client := newFakeAPI(t, map[string]string{
		"GET /api/v1/servers":          envelope(`{"servers":[` + server + `],"total":1,"page":1,"page_size":20}`),
		"POST /api/v1/servers":         envelope(server),
		"GET /api/v1/servers/4":        envelope(server),
		"PUT /api/v1/servers/4":        envelope(server),
		"DELETE /api/v1/servers/4":     envelope(`null`),
		"GET /api/v1/servers/4/detail": envelope(`{"server":` + server + `,"status":{"server_id":4,"online":true,"current_players":7,"max_players":50,"tps":19.8,"expire_at":"2024-01-01T00:05:00Z","last_heartbeat":"2024-01-01T00:04:00Z"}}`),
	})
	servers := NewServerService(client)

	data, err := servers.List(ctx, &ListServersOptions{OnlineOnly: models.Ptr(true)})
	require.NoError(t, err)
	require.Len(t, data.Servers, 1)
	assert.Equal(t, url.Values{"online_only": {"true"}}, api.last(t).Query)

	created, err := servers.Create(ctx, models.CreateServerRequest{Name: "survival", Address: "mc.example.com:25565"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, map[string]any{"name": "survival", "address": "mc.example.com:25565"}, api.last(t).Body)

	got, err := servers.Get(ctx, 4)
	require.NoError(t, err)
	require.NotNil(t, got.ServerType)
	assert.Equal(t, models.ServerTypeMinecraft, *got.ServerType)

	_, err = servers.Update(ctx, 4, models.UpdateServerRequest{Description: models.Ptr("main world")})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"description": "main world"}, api.last(t).Body)

	require.NoError(t, servers.Delete(ctx, 4))

	detail, err := servers.GetDetail(ctx, 4)
	require.NoError(t, err)
	require.NotNil(t, detail.Status)
	assert.True(t, detail.Status.Online)
	assert.Equal(t, 7, detail.Status.CurrentPlayers)
}

func TestMonitorService(t *testing.T) {
	ctx := context.Background()
	api, client := newFakeAPI(t, map[string]string{
		"POST /api/v1/servers/4/heartbeat": envelope(`{"received_at":1709296200000,"response_at":1709296200005,"sequence_id":12,"server_time":1709296200005,"status":"ok","next_heartbeat":1709296230000,"expire_at":1709296260000}`),
		"GET /api/v1/servers/4/latency":    envelope(`{"server_id":4,"count":10,"current":35,"average":40,"min":20,"max":90,"variance":12.5,"last_updated":"2024-03-01T12:30:00Z"}`),
		"GET /api/v1/servers/4/status":     envelope(`{"server_id":4,"online":false,"current_players":0,"max_players":50,"expire_at":"2024-03-01T12:30:00Z","last_heartbeat":"2024-03-01T12:29:00Z"}`),
	})
	monitor := NewMonitorService(client)

	ack, err := monitor.Heartbeat(ctx, 4, models.HeartbeatRequest{
		SequenceID:     models.Ptr(int64(12)),
		CurrentPlayers: models.Ptr(7),
		PlayerList:     []models.PlayerLoginInfo{{Name: models.Ptr("Steve")}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), ack.SequenceID)
	assert.Equal(t, "ok", ack.Status)
	assert.Equal(t, map[string]any{
		"sequence_id":     float64(12),
		"current_players": float64(7),
		"player_list":     []any{map[string]any{"name": "Steve"}},
	}, api.last(t).Body)

	stats, err := monitor.GetLatencyStats(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 40, stats.Average)
	assert.Equal(t, 12.5, stats.Variance)

	status, err := monitor.GetServerStatus(ctx, 4)
	require.NoError(t, err)
	assert.False(t, status.Online)
	assert.Nil(t, status.TPS)
}

func TestTownService(t *testing.T) {
	ctx := context.Background()
	town := `{"id":9,"name":"Spawn","level":3,"leader_id":1,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}`
	api, client := newFakeAPI(t, map[string]string{
		"GET /api/v1/towns":            envelope(`{"towns":[` + town + `],"total":1,"page":1,"page_size":20}`),
		"POST /api/v1/towns":           envelope(town),
		"GET /api/v1/towns/9":          envelope(town),
		"PUT /api/v1/towns/9":          envelope(town),
		"DELETE /api/v1/towns/9":       envelope(`null`),
		"GET /api/v1/towns/9/members":  envelope(`{"members":[` + playerJSON + `],"total":1,"page":1,"page_size":5}`),
		"POST /api/v1/towns/9/members": envelope(`null`),
	})
	towns := NewTownService(client)

	list, err := towns.List(ctx, &ListTownsOptions{MinLevel: models.Ptr(2)})
	require.NoError(t, err)
	assert.Len(t, list.Items(), 1)
	assert.Equal(t, url.Values{"min_level": {"2"}}, api.last(t).Query)

	created, err := towns.Create(ctx, models.CreateTownRequest{Name: "Spawn", Level: 3})
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)

	got, err := towns.Get(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, got.LeaderID)
	assert.Equal(t, 1, *got.LeaderID)
	assert.Empty(t, api.last(t).Query)

	_, err = towns.Update(ctx, 9, models.UpdateTownRequest{LeaderID: models.Ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"leader_id": float64(1)}, api.last(t).Body)

	require.NoError(t, towns.Delete(ctx, 9))

	opts := NewPageOptions(1, 5)
	members, err := towns.ListMembers(ctx, 9, &opts)
	require.NoError(t, err)
	assert.Equal(t, 5, members.PageSize)
	assert.Equal(t, "Steve", members.Items()[0].Name)

	require.NoError(t, towns.AddMember(ctx, 9, 1))
	assert.Equal(t, map[string]any{"player_id": float64(1), "action": "add"}, api.last(t).Body)

	require.NoError(t, towns.RemoveMember(ctx, 9, 1))
	assert.Equal(t, map[string]any{"player_id": float64(1), "action": "remove"}, api.last(t).Body)
}

func TestTownService_GetDetail(t *testing.T) {
	town := `{"id":9,"name":"Spawn","level":3,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}`
	api, client := newFakeAPI(t, map[string]string{
		"GET /api/v1/towns/9": envelope(`{"town":` + town + `,"leader":1,"members":[` + playerJSON + `]}`),
	})

	detail, err := NewTownService(client).GetDetail(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Spawn", detail.Town.Name)
	require.NotNil(t, detail.Leader)
	assert.Equal(t, 1, *detail.Leader)
	assert.Len(t, detail.Members, 1)
	assert.Equal(t, url.Values{"detail": {"true"}}, api.last(t).Query)
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	token := `{"id":3,"name":"ci","role":"admin","active":true,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}`
	api, client := newFakeAPI(t, map[string]string{
		"GET /api/v1/tokens":      envelope(`{"tokens":[` + token + `]}`),
		"POST /api/v1/tokens":     envelope(`{"token_info":` + token + `,"token_value":"nm_secret"}`),
		"GET /api/v1/tokens/3":    envelope(token),
		"PUT /api/v1/tokens/3":    envelope(token),
		"DELETE /api/v1/tokens/3": envelope(`null`),
	})
	tokens := NewTokenService(client)

	list, err := tokens.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list.Tokens, 1)
	assert.Empty(t, api.last(t).Query)

	page := NewPageOptions(2, 50)
	_, err = tokens.List(ctx, &page)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"page": {"2"}, "page_size": {"50"}}, api.last(t).Query)

	created, err := tokens.Create(ctx, models.CreateApiTokenRequest{Name: "ci", Role: "admin", ExpireDays: models.Ptr(30)})
	require.NoError(t, err)
	assert.Equal(t, "nm_secret", created.TokenValue)
	assert.Equal(t, 3, created.TokenInfo.ID)
	assert.Equal(t, map[string]any{"name": "ci", "role": "admin", "expire_days": float64(30)}, api.last(t).Body)

	got, err := tokens.Get(ctx, 3)
	require.NoError(t, err)
	assert.True(t, got.Active)

	_, err = tokens.Update(ctx, 3, models.UpdateApiTokenRequest{Active: models.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"active": false}, api.last(t).Body)

	require.NoError(t, tokens.Delete(ctx, 3))
}

func TestIPService(t *testing.T) {
	ctx := context.Background()
	ip := `{"ip":"203.0.113.7","ip_type":"ipv4","country":"Exampleland","is_bogon":false,"is_mobile":false,"is_satellite":false,"is_crawler":false,"is_datacenter":true,"is_tor":false,"is_proxy":true,"is_vpn":false,"is_abuser":false,"banned":true,"ban_reason":"abuse","threat_level":2,"risk_score":85,"query_status":1,"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z","risk_level":"high","risk_description":"proxy in datacenter"}`
	page := envelope(`{"ips":[` + ip + `],"total":1,"page":1,"page_size":20}`)
	api, client := newFakeAPI(t, map[string]string{
		"GET /api/v1/ips/203.0.113.7": envelope(ip),
		"POST /api/v1/ips/ban":        envelope(`null`),
		"POST /api/v1/ips/unban":      envelope(`null`),
		"GET /api/v1/ips":             page,
		"GET /api/v1/ips/banned":      page,
		"GET /api/v1/ips/suspicious":  page,
		"GET /api/v1/ips/high-risk":   page,
		"GET /api/v1/ips/statistics":  `{"total_ips":100,"completed_ips":90,"pending_ips":5,"failed_ips":5,"banned_ips":3,"proxy_ips":10,"vpn_ips":4,"tor_ips":1,"datacenter_ips":20,"high_risk_ips":6}`,
	})
	ips := NewIPService(client)

	info, err := ips.Get(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, models.ThreatLevelHigh, info.ThreatLevel)
	assert.Equal(t, models.QueryStatusCompleted, info.QueryStatus)
	assert.True(t, info.Banned)

	require.NoError(t, ips.Ban(ctx, models.BanIPRequest{IPs: []string{"203.0.113.7"}, Reason: "abuse"}))
	assert.Equal(t, map[string]any{"ips": []any{"203.0.113.7"}, "reason": "abuse"}, api.last(t).Body)

	require.NoError(t, ips.Unban(ctx, models.UnbanIPRequest{IPs: []string{"203.0.113.7"}}))
	assert.Equal(t, "/api/v1/ips/unban", api.last(t).Path)

	level := models.ThreatLevelMedium
	list, err := ips.List(ctx, &ListIPsOptions{BannedOnly: models.Ptr(true), MinThreatLevel: &level})
	require.NoError(t, err)
	assert.Len(t, list.Items(), 1)
	assert.Equal(t, url.Values{"banned_only": {"true"}, "min_threat_level": {"1"}}, api.last(t).Query)

	for name, fn := range map[string]func(context.Context, *ListIPsOptions) (*models.IPsListData, error){
		"/api/v1/ips/banned":     ips.ListBanned,
		"/api/v1/ips/suspicious": ips.ListSuspicious,
		"/api/v1/ips/high-risk":  ips.ListHighRisk,
	} {
		data, err := fn(ctx, nil)
		require.NoError(t, err, name)
		assert.Len(t, data.IPs, 1, name)
		assert.Equal(t, name, api.last(t).Path)
	}

	stats, err := ips.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, stats.TotalIPs)
	assert.Equal(t, 6, stats.HighRiskIPs)
}

func TestPlayerServerService(t *testing.T) {
	ctx := context.Background()
	api, client := newFakeAPI(t, map[string]string{
		"GET /api/v1/players/1/servers":        envelope(`{"servers":[{"player_id":1,"server_id":4,"online":true,"joined_at":"2024-03-01T12:00:00Z","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-03-01T12:00:00Z"}],"total":1}`),
		"GET /api/v1/server-players":           envelope(`{"players":[{"player_id":1,"player_name":"Steve","server_id":4,"server_name":"survival","joined_at":"2024-03-01T12:00:00Z"}],"total":1,"page":1,"page_size":50}`),
		"POST /api/v1/servers/players/offline": envelope(`null`),
	})
	links := NewPlayerServerService(client)

	servers, err := links.GetPlayerServers(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, servers.Servers, 1)
	assert.True(t, servers.Servers[0].Online)
	assert.Empty(t, api.last(t).Query)

	_, err = links.GetPlayerServers(ctx, 1, true)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"online_only": {"true"}}, api.last(t).Query)

	players, err := links.GetServerPlayers(ctx, &ServerPlayersOptions{ServerID: models.Ptr(4), OnlineOnly: models.Ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, "survival", players.Items()[0].ServerName)
	assert.Equal(t, url.Values{"server_id": {"4"}, "online_only": {"true"}}, api.last(t).Query)

	require.NoError(t, links.SetPlayersOffline(ctx, 4, []int{1, 2}))
	assert.Equal(t, map[string]any{"server_id": float64(4), "player_ids": []any{float64(1), float64(2)}}, api.last(t).Body)
}
