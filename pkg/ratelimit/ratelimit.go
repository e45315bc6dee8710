// Package ratelimit guards expensive routes with sentinel flow rules.
package ratelimit

import (
	"context"

	"VideoHub.com/pkg/errno"
	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	sentinelcfg "github.com/alibaba/sentinel-golang/core/config"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/pkg/errors"
)

const (
	ResourceSearch = "search"
	ResourceUpload = "upload"
	ResourceLogin  = "login"
)

var enabled bool

// Init starts sentinel and loads one QPS rule per resource. A zero QPS rejects
// every request; resources missing from qps are not limited.
func Init(logDir string, qps map[string]float64) error {
	conf := sentinelcfg.NewDefaultConfig()
	if logDir != "" {
		conf.Sentinel.Log.Dir = logDir
	}
	if err := sentinel.InitWithConfig(conf); err != nil {
		return errors.Wrap(err, "init sentinel failed")
	}
	if err := LoadRules(qps); err != nil {
		return err
	}
	enabled = true
	hlog.Infof("sentinel flow control enabled: %v", qps)
	return nil
}

func LoadRules(qps map[string]float64) error {
	rules := make([]*flow.Rule, 0, len(qps))
	for resource, threshold := range qps {
		rules = append(rules, &flow.Rule{
			Resource:               resource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              threshold,
			StatIntervalInMs:       1000,
		})
	}
	if _, err := flow.LoadRules(rules); err != nil {
		return errors.Wrap(err, "load flow rules failed")
	}
	return nil
}

// Limit rejects requests over the resource's QPS with 429.
func Limit(resource string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !enabled {
			c.Next(ctx)
			return
		}
		entry, blocked := sentinel.Entry(resource, sentinel.WithTrafficType(base.Inbound))
		if blocked != nil {
			hlog.CtxWarnf(ctx, "request to %s blocked by %s", c.FullPath(), blocked.BlockType())
			c.AbortWithStatusJSON(errno.TooManyRequestsErr.Status, utils.H{"error": errno.TooManyRequestsErr.ErrMsg})
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}
