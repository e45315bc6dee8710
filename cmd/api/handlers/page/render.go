package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

//go:embed templates/*.html
var files embed.FS

const signInPath = "/auth/signin"

// Templates parses the embedded page templates for hertz SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.New("pages").Funcs(FuncMap()).ParseFS(files, "templates/*.html"))
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"duration": FormatDuration,
		"compact":  FormatCount,
		"ago":      TimeAgo,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
	}
}

// FormatDuration renders seconds as m:ss or h:mm:ss.
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "0:00"
	}
	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatCount renders 1234 as 1.2K and 2500000 as 2.5M.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func TimeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d < 365*24*time.Hour:
		return plural(int(d/(30*24*time.Hour)), "month")
	default:
		return plural(int(d/(365*24*time.Hour)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// render adds the keys the shared header reads.
func render(c *app.RequestContext, status int, name string, data utils.H) {
	if user, ok := jwt.CurrentUser(c); ok {
		data["User"] = user
	}
	if _, ok := data["Query"]; !ok {
		data["Query"] = ""
	}
	c.HTML(status, name, data)
}

// renderError shows the error page with the status err carries.
func renderError(c *app.RequestContext, err error) {
	Err := errno.ConvertErr(err)
	if Err.Status >= http.StatusInternalServerError {
		hlog.Errorf("render %s failed: %+v", c.Path(), err)
	}
	render(c, Err.Status, "error.html", utils.H{"Title": http.StatusText(Err.Status), "Status": Err.Status, "Message": Err.ErrMsg})
}

// sessionUser redirects to the sign-in page when there is no session.
func sessionUser(c *app.RequestContext) (*model.User, bool) {
	user, ok := jwt.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, []byte(signInPath))
	}
	return user, ok
}
