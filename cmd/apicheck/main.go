// Command apicheck exercises a running Pathway instance end to end: it hits
// every endpoint once and verifies the response shapes, exiting non-zero on
// the first mismatch. Intended as a post-deploy smoke check.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Default configuration constants.
const (
	defaultTimeout   = 10 * time.Second
	defaultCheckTime = 2 * time.Minute
)

type skillGapResult struct {
	MatchedSkills          []string `json:"matchedSkills"`
	MissingSkills          []string `json:"missingSkills"`
	Recommendations        []string `json:"recommendations"`
	SuggestedLearningOrder []string `json:"suggestedLearningOrder"`
}

type roadmapResult struct {
	TargetRole string `json:"targetRole"`
	Roadmap    []struct {
		Phase  string   `json:"phase"`
		Topics []string `json:"topics"`
	} `json:"roadmap"`
}

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:5000", "Base URL of the service")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		skipNews = flag.Bool("skip-news", false, "Skip the news endpoint (offline environments)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), defaultCheckTime)
	defer cancel()

	c := &checker{
		baseURL: *baseURL,
		client:  &http.Client{Timeout: *timeout},
	}

	failures := 0
	for _, check := range []struct {
		name string
		fn   func(context.Context) error
	}{
		{"health", c.checkHealth},
		{"skill-gap", c.checkSkillGap},
		{"roadmap", c.checkRoadmap},
		{"news", c.checkNews},
	} {
		if check.name == "news" && *skipNews {
			fmt.Println("SKIP news")
			continue
		}
		if err := check.fn(ctx); err != nil {
			fmt.Printf("FAIL %s: %v\n", check.name, err)
			failures++
			continue
		}
		fmt.Printf("OK   %s\n", check.name)
	}

	if failures > 0 {
		os.Exit(1)
	}
}

type checker struct {
	baseURL string
	client  *http.Client
}

func (c *checker) getJSON(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
}

func (c *checker) postJSON(ctx context.Context, path string, body, out any) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
}

func (c *checker) checkHealth(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	status, err := c.getJSON(ctx, "/health", &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK || out.Status != "ok" {
		return fmt.Errorf("unexpected health response: %d %q", status, out.Status)
	}
	return nil
}

func (c *checker) checkSkillGap(ctx context.Context) error {
	var out skillGapResult
	status, err := c.postJSON(ctx, "/api/skill-gap", map[string]any{
		"targetRole":    "Backend Developer",
		"currentSkills": "Java, SQL, Git",
	}, &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status %d", status)
	}
	if len(out.MatchedSkills)+len(out.MissingSkills) == 0 {
		return fmt.Errorf("empty analysis result")
	}
	if len(out.Recommendations) == 0 {
		return fmt.Errorf("no recommendations returned")
	}
	return nil
}

func (c *checker) checkRoadmap(ctx context.Context) error {
	var out roadmapResult
	status, err := c.postJSON(ctx, "/api/roadmap", map[string]any{
		"targetRole": "data analyst",
	}, &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status %d", status)
	}
	if out.TargetRole != "Data Analyst" {
		return fmt.Errorf("unexpected canonical role %q", out.TargetRole)
	}
	if len(out.Roadmap) == 0 {
		return fmt.Errorf("empty roadmap")
	}
	return nil
}

func (c *checker) checkNews(ctx context.Context) error {
	var out struct {
		Stories []struct {
			Type string `json:"type"`
		} `json:"stories"`
	}
	status, err := c.getJSON(ctx, "/api/news", &out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status %d", status)
	}
	for _, s := range out.Stories {
		if s.Type != "story" {
			return fmt.Errorf("non-story item leaked through: %q", s.Type)
		}
	}
	return nil
}
