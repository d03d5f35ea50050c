// Command seed populates a running matchd instance with generated survey
// submissions and optionally triggers an event assignment. Useful for demos
// and manual testing of a live server.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/mentormesh/matchd/internal/domain/model"
	"github.com/mentormesh/matchd/internal/domain/survey"
	"github.com/mentormesh/matchd/internal/domain/types"
)

const requestTimeout = 10 * time.Second

var hobbies = []string{
	"staying in with a show and cooking something new",
	"going out with friends, maybe a party",
	"hiking and exploring nature with my camera",
	"gaming and streaming with my group",
	"reading books and listening to podcasts",
	"gym, running, and the occasional yoga class",
	"painting, drawing, and other art projects",
	"doomscroll on tiktok until way too late",
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "base URL of the matchd server")
		mentors = flag.Int("mentors", 5, "number of mentors to generate")
		mentees = flag.Int("mentees", 8, "number of mentees to generate")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		run     = flag.Bool("assign", true, "trigger an event assignment after seeding")
	)
	flag.Parse()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // demo data, not crypto
	q := survey.Default()

	for i := 0; i < *mentors; i++ {
		id := fmt.Sprintf("mentor-%02d@example.com", i)
		if err := post(ctx, *baseURL+"/participants", generate(rng, q, id, model.RoleMentor), nil); err != nil {
			fail(err)
		}
	}
	for i := 0; i < *mentees; i++ {
		id := fmt.Sprintf("mentee-%02d@example.com", i)
		if err := post(ctx, *baseURL+"/participants", generate(rng, q, id, model.RoleMentee), nil); err != nil {
			fail(err)
		}
	}
	fmt.Printf("seeded %d mentors and %d mentees\n", *mentors, *mentees)

	if !*run {
		return
	}
	var result types.AssignmentResult
	if err := post(ctx, *baseURL+"/assignment", nil, &result); err != nil {
		fail(err)
	}
	fmt.Printf("assignment %s: %d pairs, total score %.3f\n", result.RunID, len(result.Pairs), result.TotalScore)
	for i, pair := range result.Pairs {
		fmt.Printf("%2d. %s <-> %s  %.1f%%\n", i+1, pair.MenteeID, pair.MentorID, pair.Score*100)
	}
	for _, id := range result.UnmatchedMenteeIDs {
		fmt.Printf("unmatched mentee: %s\n", id)
	}
	for _, id := range result.UnmatchedMentorIDs {
		fmt.Printf("unmatched mentor: %s\n", id)
	}
}

// generate builds one plausible survey submission.
func generate(rng *rand.Rand, q *survey.Questionnaire, id string, role model.Role) model.Participant {
	answers := make(model.Answers)
	for _, key := range q.RatingKeys {
		answers[key] = model.Rating(1 + rng.Intn(5))
	}
	for _, key := range q.TextKeys {
		answers[key] = model.Text(hobbies[rng.Intn(len(hobbies))])
	}
	ranking := make([]string, len(q.RankingOptions))
	copy(ranking, q.RankingOptions)
	rng.Shuffle(len(ranking), func(i, j int) {
		ranking[i], ranking[j] = ranking[j], ranking[i]
	})
	answers[q.RankingKey] = model.Ranking(ranking...)

	return model.Participant{ID: id, Role: role, Answers: answers}
}

// post sends a JSON request and decodes the response into out when non-nil.
func post(ctx context.Context, url string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("post %s: unexpected status %s", url, resp.Status)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
