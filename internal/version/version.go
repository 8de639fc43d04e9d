// Package version reports build information for the running binary.
package version

import (
	"net/http"

	"visionmines/internal/shared/response"

	goversion "github.com/caarlos0/go-version"
	"github.com/gin-gonic/gin"
)

const (
	Application = "visionmines"
	Description = "VisionMines PPE management portal"
	WebSite     = "https://visionmines.com"
)

// Set at link time with -ldflags "-X visionmines/internal/version.version=...".
var (
	version   = ""
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

func Build() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(Application, Description, WebSite),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}

type Response struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func mapToResponse(info goversion.Info) Response {
	return Response{
		Name:      info.Name,
		Version:   info.GitVersion,
		Commit:    info.GitCommit,
		BuildDate: info.BuildDate,
		GoVersion: info.GoVersion,
		Platform:  info.Platform,
	}
}

func RegisterRoutes(r *gin.RouterGroup, info goversion.Info) {
	resp := mapToResponse(info)
	r.GET("/version", func(c *gin.Context) {
		response.Success(c, http.StatusOK, resp, nil)
	})
}
