package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/idilsaglam/planner/internal/model"
)

// Events fetches up to maxResults upcoming events.
func (c *Client) Events(ctx context.Context, maxResults int) (model.EventsResponse, error) {
	var out model.EventsResponse
	q := url.Values{"max_results": {strconv.Itoa(maxResults)}}
	err := c.do(ctx, http.MethodGet, "/events", q, nil, &out)
	return out, err
}

// MonthSplit fetches past events of the current month and events of the next one.
func (c *Client) MonthSplit(ctx context.Context, limitPast, limitFuture int) (model.MonthSplit, error) {
	var out model.MonthSplit
	q := url.Values{}
	if limitPast > 0 {
		q.Set("limit_past", strconv.Itoa(limitPast))
	}
	if limitFuture > 0 {
		q.Set("limit_future", strconv.Itoa(limitFuture))
	}
	err := c.do(ctx, http.MethodGet, "/api/calendar/month-split", q, nil, &out)
	return out, err
}

// NowAndNext fetches the running event and up to limit upcoming ones.
func (c *Client) NowAndNext(ctx context.Context, limit int) (model.NowNext, error) {
	var out model.NowNext
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	err := c.do(ctx, http.MethodGet, "/api/calendar/now-and-next", q, nil, &out)
	return out, err
}

func (c *Client) GenerateFitness(ctx context.Context, req model.FitnessRequest) (model.GenerationResult, error) {
	var out model.GenerationResult
	err := c.do(ctx, http.MethodPost, "/api/fitness/generate", nil, req, &out)
	return out, err
}

func (c *Client) GenerateFood(ctx context.Context, req model.FoodRequest) (model.GenerationResult, error) {
	var out model.GenerationResult
	err := c.do(ctx, http.MethodPost, "/api/food/generate", nil, req, &out)
	return out, err
}

// Plan asks the coordinator for a workout, a meal plan and a day schedule.
func (c *Client) Plan(ctx context.Context, req model.PlanRequest) (model.DayPlan, error) {
	var out model.DayPlan
	err := c.do(ctx, http.MethodPost, "/plan", nil, req, &out)
	return out, err
}
