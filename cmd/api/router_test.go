package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"VideoHub.com/cmd/model"
	userservice "VideoHub.com/cmd/user/service"
	"VideoHub.com/config"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/jwt"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/oss"
	"VideoHub.com/pkg/testutil"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/app/server"
	hconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type fixture struct {
	db     *gorm.DB
	engine *route.Engine
	admin  *model.User
	alice  *model.User
	bob    *model.User
	video  *model.Video
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	config.ConfigInfo.Jwt.Key = "test-key"
	config.ConfigInfo.Admin.Email = "admin@example.com"
	prevStorage := oss.SetDefault(oss.NewLocal(t.TempDir(), "/uploads"))
	prevPublisher := mq.SetPublisher(mq.NopPublisher{})
	t.Cleanup(func() {
		oss.SetDefault(prevStorage)
		mq.SetPublisher(prevPublisher)
	})
	jwt.Init(func(ctx context.Context, email, password string) (*model.User, error) {
		return userservice.NewLoginUserService(ctx).LoginUser(&userservice.LoginRequest{Email: email, Password: password})
	})

	engine := route.NewEngine(hconfig.NewOptions([]hconfig.Option{}))
	register(engine, Routes{})

	f := &fixture{db: db, engine: engine}
	f.admin = testutil.CreateUser(t, db, model.User{Email: "admin@example.com", Username: "admin", Role: constants.RoleAdmin})
	f.alice = testutil.CreateUser(t, db, model.User{Email: "alice@example.com", Username: "alice"})
	f.bob = testutil.CreateUser(t, db, model.User{Email: "bob@example.com", Username: "bob"})
	music := testutil.CreateCategory(t, db, "Music", "music")
	f.video = testutil.CreateVideo(t, db, f.alice, music, model.Video{Title: "Gopher Song", IsPublished: true})
	return f
}

func (f *fixture) do(method, url string, body interface{}, token string) *ut.ResponseRecorder {
	var b *ut.Body
	headers := []ut.Header{}
	if body != nil {
		raw, _ := json.Marshal(body)
		b = &ut.Body{Body: bytes.NewReader(raw), Len: len(raw)}
		headers = append(headers, ut.Header{Key: "Content-Type", Value: "application/json"})
	}
	if token != "" {
		headers = append(headers, ut.Header{Key: "Authorization", Value: "Bearer " + token})
	}
	return ut.PerformRequest(f.engine, method, url, b, headers...)
}

func (f *fixture) login(t *testing.T, email string) string {
	t.Helper()
	w := f.do(http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": testutil.DefaultPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode(t *testing.T, w *ut.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestPing(t *testing.T) {
	f := setup(t)
	w := f.do(http.MethodGet, "/ping", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestLogin(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "alice@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "alice@example.com", "password": "wrong-password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["error"])

	token := f.login(t, "alice@example.com")
	w = f.do(http.MethodGet, "/api/auth/session", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, f.alice.ID, user["id"])
	assert.Equal(t, constants.RoleUser, user["role"])
}

func TestSessionRequired(t *testing.T) {
	f := setup(t)
	w := f.do(http.MethodGet, "/api/auth/session", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", decode(t, w)["error"])
}

func TestDisabledUserLosesSession(t *testing.T) {
	f := setup(t)
	token := f.login(t, "bob@example.com")
	require.NoError(t, f.db.Model(&model.User{}).Where("id = ?", f.bob.ID).Update("disabled", true).Error)

	w := f.do(http.MethodGet, "/api/auth/session", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutes(t *testing.T) {
	f := setup(t)
	userToken := f.login(t, "alice@example.com")
	adminToken := f.login(t, "admin@example.com")

	w := f.do(http.MethodGet, "/api/users", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied. Admin privileges required.", decode(t, w)["error"])

	w = f.do(http.MethodGet, "/api/users", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["users"], 3)

	w = f.do(http.MethodPatch, "/api/users/"+f.admin.ID, map[string]interface{}{"disabled": true}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot modify your own account.", decode(t, w)["error"])

	w = f.do(http.MethodPatch, "/api/users/"+f.bob.ID, map[string]interface{}{"disabled": true, "role": "MODERATOR"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User disabled and role changed to MODERATOR successfully", decode(t, w)["message"])

	w = f.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "carol@example.com", "username": "carol", "name": "Carol", "password": "secret1",
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User created successfully", decode(t, w)["message"])

	w = f.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "carol@example.com", "username": "carol2", "name": "Carol", "password": "secret1",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodDelete, "/api/users/"+f.bob.ID, nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(http.MethodDelete, "/api/users/"+f.bob.ID, nil, adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupAdminRequiresAdminOnceConfigured(t *testing.T) {
	f := setup(t)
	w := f.do(http.MethodPost, "/api/admin/setup", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPost, "/api/admin/setup", nil, f.login(t, "admin@example.com"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVideoRoutes(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/api/videos", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["videos"], 1)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["totalVideos"])
	assert.Equal(t, float64(constants.HomePageSize), pagination["limit"])

	w = f.do(http.MethodGet, "/api/videos/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Video not found"}`, w.Body.String())

	w = f.do(http.MethodPost, "/api/videos/"+f.video.ID+"/view", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"views":1}`, w.Body.String())

	w = f.do(http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"music"`)
}

func TestDeleteVideoPermission(t *testing.T) {
	f := setup(t)
	w := f.do(http.MethodDelete, "/api/videos/"+f.video.ID, nil, f.login(t, "bob@example.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodDelete, "/api/videos/"+f.video.ID, nil, f.login(t, "alice@example.com"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestSearchRoute(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/api/search?q=%20%20", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Search query is required", decode(t, w)["error"])

	w = f.do(http.MethodGet, "/api/search?q=gopher&page=x", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodGet, "/api/search?q=GOPHER", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["results"], 1)
	assert.Equal(t, map[string]interface{}{"q": "GOPHER", "category": nil}, body["query"])
}

func TestLikeAndLibrary(t *testing.T) {
	f := setup(t)
	token := f.login(t, "bob@example.com")
	url := "/api/videos/" + f.video.ID + "/like"

	w := f.do(http.MethodPost, url, map[string]string{"type": "MEH"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, url, map[string]string{"type": "LIKE"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"action":"created","type":"LIKE"}`, w.Body.String())

	w = f.do(http.MethodGet, url, nil, token)
	assert.JSONEq(t, `{"type":"LIKE"}`, w.Body.String())

	w = f.do(http.MethodGet, "/api/library", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["videos"], 1)

	w = f.do(http.MethodPost, url, map[string]string{"type": "LIKE"}, token)
	assert.JSONEq(t, `{"success":true,"action":"removed","type":null}`, w.Body.String())
}

func TestCommentRoutes(t *testing.T) {
	f := setup(t)
	url := "/api/videos/" + f.video.ID + "/comments"

	w := f.do(http.MethodPost, url, map[string]string{"content": "  "}, f.login(t, "bob@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, url, map[string]string{"content": "nice"}, f.login(t, "bob@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	comment := decode(t, w)["comment"].(map[string]interface{})

	w = f.do(http.MethodGet, url, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"content":"nice"`)

	w = f.do(http.MethodDelete, url+"/"+comment["id"].(string), nil, f.login(t, "alice@example.com"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = f.do(http.MethodDelete, url+"/"+comment["id"].(string), nil, f.login(t, "admin@example.com"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlaylistRoutes(t *testing.T) {
	f := setup(t)
	token := f.login(t, "bob@example.com")

	w := f.do(http.MethodPost, "/api/playlists", map[string]interface{}{"title": "Mine", "isPublic": false}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["playlist"].(map[string]interface{})["id"].(string)

	w = f.do(http.MethodGet, "/api/playlists/"+id, nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = f.do(http.MethodGet, "/api/playlists/"+id, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/api/playlists/"+id+"/videos", map[string]string{"videoId": f.video.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["playlistVideo"].(map[string]interface{})["order"])

	w = f.do(http.MethodPost, "/api/playlists/"+id+"/videos", map[string]string{"videoId": f.video.ID}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do(http.MethodDelete, "/api/playlists/"+id+"/videos", map[string]string{"videoId": f.video.ID}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	w = f.do(http.MethodDelete, "/api/playlists/"+id+"/videos", map[string]string{"videoId": f.video.ID}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscribeRoutes(t *testing.T) {
	f := setup(t)
	token := f.login(t, "bob@example.com")

	w := f.do(http.MethodPost, "/api/users/"+f.bob.ID+"/subscribe", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/users/"+f.alice.ID+"/subscribe", nil, token)
	assert.JSONEq(t, `{"success":true,"action":"subscribed","subscribed":true}`, w.Body.String())

	w = f.do(http.MethodGet, "/api/users/"+f.alice.ID+"/subscribe", nil, token)
	assert.JSONEq(t, `{"subscribed":true}`, w.Body.String())

	w = f.do(http.MethodGet, "/api/users/"+f.bob.ID+"/subscriptions", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["channels"], 1)
}

// serve runs the routes on a loopback port. Pages need the HTML renderer the
// HTTP/1 server installs, so they cannot go through ut.PerformRequest.
func (f *fixture) serve(t *testing.T) *liveServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	h := server.New(server.WithHostPorts(addr), server.WithDisablePrintRoute(true), server.WithExitWaitTime(time.Second))
	register(h.Engine, Routes{})
	go func() {
		_ = h.Run()
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = h.Shutdown(ctx)
	})
	require.Eventually(t, h.IsRunning, 5*time.Second, 10*time.Millisecond)

	cli, err := client.NewClient()
	require.NoError(t, err)
	return &liveServer{base: "http://" + addr, client: cli}
}

type liveServer struct {
	base   string
	client *client.Client
}

// get does not follow redirects.
func (s *liveServer) get(t *testing.T, path, token string) *protocol.Response {
	t.Helper()
	req, resp := protocol.AcquireRequest(), &protocol.Response{}
	defer protocol.ReleaseRequest(req)
	req.SetMethod(http.MethodGet)
	req.SetRequestURI(s.base + path)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	require.NoError(t, s.client.Do(context.Background(), req, resp))
	return resp
}

func location(resp *protocol.Response) string {
	return string(resp.Header.Peek("Location"))
}

func TestPages(t *testing.T) {
	f := setup(t)
	s := f.serve(t)
	aliceToken := f.login(t, "alice@example.com")
	adminToken := f.login(t, "admin@example.com")

	resp := s.get(t, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Gopher Song")

	resp = s.get(t, "/video/"+f.video.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode())
	var views int64
	require.NoError(t, f.db.Model(&model.Video{}).Where("id = ?", f.video.ID).Pluck("views", &views).Error)
	assert.Equal(t, int64(1), views)

	resp = s.get(t, "/video/missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp = s.get(t, "/search?q=gopher", "")
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Gopher Song")

	resp = s.get(t, "/library", "")
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.True(t, strings.HasSuffix(location(resp), "/auth/signin"))

	resp = s.get(t, "/admin/users", aliceToken)
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.True(t, strings.HasSuffix(location(resp), "/"))

	resp = s.get(t, "/admin/users", adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "bob@example.com")
}

func TestAccountPages(t *testing.T) {
	f := setup(t)
	s := f.serve(t)
	aliceToken := f.login(t, "alice@example.com")
	adminToken := f.login(t, "admin@example.com")

	for _, path := range []string{"/settings", "/auth/signup", "/admin/setup"} {
		resp := s.get(t, path, "")
		assert.Equal(t, http.StatusFound, resp.StatusCode(), path)
		assert.True(t, strings.HasSuffix(location(resp), "/auth/signin"), path)
	}

	resp := s.get(t, "/settings", aliceToken)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "alice@example.com")
	assert.Contains(t, string(resp.Body()), "/api/users/me/password")

	resp = s.get(t, "/auth/signup", aliceToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Only administrators can create new user accounts.")

	resp = s.get(t, "/auth/signup", adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "/api/auth/signup")

	resp = s.get(t, "/admin/setup", aliceToken)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "admin@example.com")
}

func TestVideoPageControls(t *testing.T) {
	f := setup(t)
	s := f.serve(t)
	require.NoError(t, f.db.Omit(clause.Associations).Create(&model.Playlist{Title: "Road trip", UserID: f.bob.ID}).Error)
	require.NoError(t, f.db.Omit(clause.Associations).Create(&model.Comment{Content: "nice", UserID: f.alice.ID, VideoID: f.video.ID}).Error)

	resp := s.get(t, "/video/"+f.video.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.NotContains(t, string(resp.Body()), "playlist-add")
	assert.NotContains(t, string(resp.Body()), "delete-comment")

	resp = s.get(t, "/video/"+f.video.ID, f.login(t, "bob@example.com"))
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "Road trip")
	assert.NotContains(t, string(resp.Body()), "delete-comment")

	resp = s.get(t, "/video/"+f.video.ID, f.login(t, "alice@example.com"))
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "delete-comment")

	resp = s.get(t, "/video/"+f.video.ID, f.login(t, "admin@example.com"))
	assert.Contains(t, string(resp.Body()), "delete-comment")
}
