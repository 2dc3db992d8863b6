// Package resources implements MCP resource handlers for the thinking
// framework toolkit.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (thoughtflow://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuyat/thoughtflow/internal/critical"
	"github.com/yuyat/thoughtflow/internal/dialectical"
	"github.com/yuyat/thoughtflow/internal/fivewhys"
	"github.com/yuyat/thoughtflow/internal/logical"
	"github.com/yuyat/thoughtflow/internal/mece"
	"github.com/yuyat/thoughtflow/internal/scamper"
	"github.com/yuyat/thoughtflow/internal/sequential"
	"github.com/yuyat/thoughtflow/internal/stepwise"
)

// Handler serves live status over every framework engine.
type Handler struct {
	stepwise    *stepwise.Engine
	critical    *critical.Engine
	logical     *logical.Engine
	dialectical *dialectical.Engine
	fivewhys    *fivewhys.Engine
	mece        *mece.Engine
	scamper     *scamper.Engine
	log         *sequential.Log
}

// NewHandler creates a resource Handler over the given engines.
func NewHandler(
	sw *stepwise.Engine,
	cr *critical.Engine,
	lo *logical.Engine,
	di *dialectical.Engine,
	fw *fivewhys.Engine,
	me *mece.Engine,
	sc *scamper.Engine,
	log *sequential.Log,
) *Handler {
	return &Handler{
		stepwise:    sw,
		critical:    cr,
		logical:     lo,
		dialectical: di,
		fivewhys:    fw,
		mece:        me,
		scamper:     sc,
		log:         log,
	}
}

// status is the JSON shape of the thoughtflow://status resource.
type status struct {
	Stepwise struct {
		Plans     int `json:"plans"`
		Completed int `json:"completed"`
	} `json:"stepwise"`
	Critical struct {
		Claims int `json:"claims"`
		Biases int `json:"biases"`
	} `json:"critical"`
	Logical struct {
		Arguments int `json:"arguments"`
		Causal    int `json:"causal"`
	} `json:"logical"`
	Dialectical struct {
		Processes int `json:"processes"`
		Completed int `json:"completed"`
	} `json:"dialectical"`
	FiveWhys struct {
		Analyses  int `json:"analyses"`
		Completed int `json:"completed"`
	} `json:"five_whys"`
	MECE struct {
		Analyses int `json:"analyses"`
	} `json:"mece"`
	Scamper struct {
		Sessions int `json:"sessions"`
		Ideas    int `json:"ideas"`
	} `json:"scamper"`
	Sequential struct {
		Thoughts int `json:"thoughts"`
		Branches int `json:"branches"`
	} `json:"sequential"`
}

// StatusResource returns the MCP resource definition for session status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"thoughtflow://status",
		"Thinking Session Status",
		mcp.WithResourceDescription("Live counts of plans, analyses, processes, and thoughts in this session"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current session status as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var st status

	plans := h.stepwise.List()
	st.Stepwise.Plans = len(plans)
	for _, p := range plans {
		if p.CompletedAt != nil {
			st.Stepwise.Completed++
		}
	}

	st.Critical.Claims = len(h.critical.ListClaims())
	st.Critical.Biases = len(h.critical.ListBiases())

	st.Logical.Arguments = len(h.logical.ListArguments())
	st.Logical.Causal = len(h.logical.ListCausal())

	processes := h.dialectical.List()
	st.Dialectical.Processes = len(processes)
	for _, p := range processes {
		if p.Completed() {
			st.Dialectical.Completed++
		}
	}

	analyses := h.fivewhys.List()
	st.FiveWhys.Analyses = len(analyses)
	for _, a := range analyses {
		if a.Status == fivewhys.StatusCompleted {
			st.FiveWhys.Completed++
		}
	}

	st.MECE.Analyses = len(h.mece.List())

	sessions := h.scamper.List()
	st.Scamper.Sessions = len(sessions)
	for _, s := range sessions {
		st.Scamper.Ideas += len(s.Ideas)
	}

	st.Sequential.Thoughts = len(h.log.History())
	st.Sequential.Branches = len(h.log.BranchIDs())

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
