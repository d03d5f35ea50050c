package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/mentormesh/matchd/internal/adapters/http/api"
	"github.com/mentormesh/matchd/internal/adapters/repository"
	service "github.com/mentormesh/matchd/internal/app"
	"github.com/mentormesh/matchd/internal/domain/matrix"
	"github.com/mentormesh/matchd/internal/domain/model"
	"github.com/mentormesh/matchd/internal/domain/types"
	"github.com/mentormesh/matchd/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// newTestServer wires a real service over an in-memory store.
func newTestServer(participants ...model.Participant) *httptest.Server {
	store := repository.NewMemStore(repository.WithParticipants(participants...))
	svc := service.New(service.WithStore(store))

	mux := http.NewServeMux()
	api.NewServer(svc, svc, 50).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func seedMentor(id string) model.Participant {
	return model.Participant{ID: id, Role: model.RoleMentor, Answers: model.Answers{
		"reflection.planning": model.Rating(5),
		"vibe.hobby":          model.Text("gaming and coding"),
		"career.ranking":      model.Ranking("AI/ML", "Data Science"),
	}}
}

func seedMentee(id string) model.Participant {
	return model.Participant{ID: id, Role: model.RoleMentee, Answers: model.Answers{
		"reflection.planning": model.Rating(2),
		"vibe.hobby":          model.Text("gaming at night"),
		"career.ranking":      model.Ranking("AI/ML", "Other"),
	}}
}

func TestHealthEndpoint(t *testing.T) {
	convey.Convey("Given a running API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		convey.Convey("When requesting the health endpoint", func() {
			resp, err := http.Get(srv.URL + "/healthz")

			convey.Convey("Then it reports ok", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)

				var body map[string]string
				convey.So(json.NewDecoder(resp.Body).Decode(&body), convey.ShouldBeNil)
				convey.So(body["status"], convey.ShouldEqual, "ok")
			})
		})

		convey.Convey("When requesting the metrics endpoint", func() {
			resp, err := http.Get(srv.URL + "/metrics")

			convey.Convey("Then Prometheus metrics are exposed", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestPostParticipant(t *testing.T) {
	convey.Convey("Given a running API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		convey.Convey("When posting a valid participant", func() {
			body := `{
				"id": "Ada@Example.com",
				"role": "mentor",
				"answers": {
					"reflection.planning": {"kind": "rating", "rating": 4},
					"vibe.hobby": {"kind": "text", "text": "gaming"},
					"career.ranking": {"kind": "ranking", "ranking": ["AI/ML", "Other"]}
				}
			}`
			resp, err := http.Post(srv.URL+"/participants", "application/json", strings.NewReader(body))

			convey.Convey("Then it is saved under its normalized id", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusCreated)

				var ack map[string]string
				convey.So(json.NewDecoder(resp.Body).Decode(&ack), convey.ShouldBeNil)
				convey.So(ack["status"], convey.ShouldEqual, "saved")
				convey.So(ack["id"], convey.ShouldEqual, "ada@example.com")
			})
		})

		convey.Convey("When posting malformed JSON", func() {
			resp, err := http.Post(srv.URL+"/participants", "application/json", strings.NewReader("{not json"))

			convey.Convey("Then the request is rejected", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusBadRequest)
			})
		})

		convey.Convey("When posting an unknown role", func() {
			body := `{"id": "x@example.com", "role": "coach", "answers": {}}`
			resp, err := http.Post(srv.URL+"/participants", "application/json", strings.NewReader(body))

			convey.Convey("Then the request is rejected", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusBadRequest)
			})
		})

		convey.Convey("When using the wrong method", func() {
			resp, err := http.Get(srv.URL + "/participants")

			convey.Convey("Then the route is not found", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestGetParticipant(t *testing.T) {
	convey.Convey("Given a server with one stored mentor", t, func() {
		srv := newTestServer(seedMentor("ada@example.com"))
		defer srv.Close()

		convey.Convey("When fetching the participant", func() {
			resp, err := http.Get(srv.URL + "/participants/ada@example.com")

			convey.Convey("Then the stored record comes back", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)

				var p model.Participant
				convey.So(json.NewDecoder(resp.Body).Decode(&p), convey.ShouldBeNil)
				convey.So(p.ID, convey.ShouldEqual, "ada@example.com")
				convey.So(p.Role, convey.ShouldEqual, model.RoleMentor)
			})
		})

		convey.Convey("When fetching the participant's feature vector", func() {
			resp, err := http.Get(srv.URL + "/participants/ada@example.com/vector")

			convey.Convey("Then the vector has the questionnaire dimension", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)

				var body struct {
					ID     string    `json:"id"`
					Vector []float64 `json:"vector"`
				}
				convey.So(json.NewDecoder(resp.Body).Decode(&body), convey.ShouldBeNil)
				convey.So(body.ID, convey.ShouldEqual, "ada@example.com")
				convey.So(len(body.Vector), convey.ShouldEqual, 42)
			})
		})

		convey.Convey("When fetching an unknown participant", func() {
			resp, err := http.Get(srv.URL + "/participants/ghost@example.com")

			convey.Convey("Then it is a 404 with an error body", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusNotFound)

				var e map[string]string
				convey.So(json.NewDecoder(resp.Body).Decode(&e), convey.ShouldBeNil)
				convey.So(e["code"], convey.ShouldEqual, "not_found")
			})
		})
	})
}

func TestGetMatches(t *testing.T) {
	convey.Convey("Given a server with both pools populated", t, func() {
		srv := newTestServer(
			seedMentor("m1@example.com"),
			seedMentor("m2@example.com"),
			seedMentee("e1@example.com"),
		)
		defer srv.Close()

		convey.Convey("When querying matches for a mentee", func() {
			resp, err := http.Get(srv.URL + "/matches/e1@example.com")

			convey.Convey("Then every mentor is ranked", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)

				var matches []types.Match
				convey.So(json.NewDecoder(resp.Body).Decode(&matches), convey.ShouldBeNil)
				convey.So(len(matches), convey.ShouldEqual, 2)
				convey.So(matches[0].Score, convey.ShouldBeGreaterThanOrEqualTo, matches[1].Score)
			})
		})

		convey.Convey("When limiting the matches", func() {
			resp, err := http.Get(srv.URL + "/matches/e1@example.com?limit=1")

			convey.Convey("Then only one match comes back", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()

				var matches []types.Match
				convey.So(json.NewDecoder(resp.Body).Decode(&matches), convey.ShouldBeNil)
				convey.So(len(matches), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When exceeding the limit cap", func() {
			resp, err := http.Get(srv.URL + "/matches/e1@example.com?limit=1000")

			convey.Convey("Then the request is rejected", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusBadRequest)

				var e map[string]string
				convey.So(json.NewDecoder(resp.Body).Decode(&e), convey.ShouldBeNil)
				convey.So(e["code"], convey.ShouldEqual, "limit_exceeded")
			})
		})

		convey.Convey("When passing a malformed limit", func() {
			resp, err := http.Get(srv.URL + "/matches/e1@example.com?limit=abc")

			convey.So(err, convey.ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusBadRequest)
		})

		convey.Convey("When querying matches for an unknown id", func() {
			resp, err := http.Get(srv.URL + "/matches/ghost@example.com")

			convey.So(err, convey.ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestGetScore(t *testing.T) {
	convey.Convey("Given a server with one mentor and one mentee", t, func() {
		srv := newTestServer(
			seedMentor("m1@example.com"),
			seedMentor("m2@example.com"),
			seedMentee("e1@example.com"),
		)
		defer srv.Close()

		convey.Convey("When scoring the pair", func() {
			resp, err := http.Get(srv.URL + "/score?a=e1@example.com&b=m1@example.com")

			convey.Convey("Then the orientation is inferred and a breakdown returned", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)

				var score types.PairScore
				convey.So(json.NewDecoder(resp.Body).Decode(&score), convey.ShouldBeNil)
				convey.So(score.MentorID, convey.ShouldEqual, "m1@example.com")
				convey.So(score.MenteeID, convey.ShouldEqual, "e1@example.com")
				convey.So(score.FinalScore, convey.ShouldBeGreaterThanOrEqualTo, 0.0)
				convey.So(score.FinalScore, convey.ShouldBeLessThanOrEqualTo, 1.0)
			})
		})

		convey.Convey("When both ids share a role", func() {
			resp, err := http.Get(srv.URL + "/score?a=m1@example.com&b=m2@example.com")

			convey.Convey("Then the pairing is rejected as same_role", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusBadRequest)

				var e map[string]string
				convey.So(json.NewDecoder(resp.Body).Decode(&e), convey.ShouldBeNil)
				convey.So(e["code"], convey.ShouldEqual, "same_role")
			})
		})

		convey.Convey("When a participant is missing", func() {
			resp, err := http.Get(srv.URL + "/score?a=ghost@example.com&b=m1@example.com")

			convey.So(err, convey.ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusNotFound)
		})

		convey.Convey("When an id parameter is omitted", func() {
			resp, err := http.Get(srv.URL + "/score?a=m1@example.com")

			convey.So(err, convey.ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestMatrixAndAssignment(t *testing.T) {
	convey.Convey("Given a server with small pools", t, func() {
		srv := newTestServer(
			seedMentor("m1@example.com"),
			seedMentor("m2@example.com"),
			seedMentee("e1@example.com"),
			seedMentee("e2@example.com"),
			seedMentee("e3@example.com"),
		)
		defer srv.Close()

		convey.Convey("When fetching the compatibility matrix", func() {
			resp, err := http.Get(srv.URL + "/matrix")

			convey.Convey("Then the full cross product is returned", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)

				var m matrix.Matrix
				convey.So(json.NewDecoder(resp.Body).Decode(&m), convey.ShouldBeNil)
				convey.So(len(m.MenteeIDs), convey.ShouldEqual, 3)
				convey.So(len(m.MentorIDs), convey.ShouldEqual, 2)
				convey.So(len(m.Cells), convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When running the event assignment", func() {
			resp, err := http.Post(srv.URL+"/assignment", "application/json", nil)

			convey.Convey("Then pairs and unmatched ids are reported", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)

				var result types.AssignmentResult
				convey.So(json.NewDecoder(resp.Body).Decode(&result), convey.ShouldBeNil)
				convey.So(result.RunID, convey.ShouldNotBeEmpty)
				convey.So(len(result.Pairs), convey.ShouldEqual, 2)
				convey.So(len(result.UnmatchedMenteeIDs), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the assignment is requested with GET", func() {
			resp, err := http.Get(srv.URL + "/assignment")

			convey.So(err, convey.ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	convey.Convey("Given a server with a few participants", t, func() {
		srv := newTestServer(
			seedMentor("m1@example.com"),
			seedMentee("e1@example.com"),
		)
		defer srv.Close()

		convey.Convey("When fetching stats", func() {
			resp, err := http.Get(srv.URL + "/stats")

			convey.Convey("Then counts and dimension are reported", func() {
				convey.So(err, convey.ShouldBeNil)
				defer func() { _ = resp.Body.Close() }()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)

				var stats map[string]any
				convey.So(json.NewDecoder(resp.Body).Decode(&stats), convey.ShouldBeNil)
				convey.So(stats["participants"], convey.ShouldEqual, 2)
				convey.So(stats["mentors"], convey.ShouldEqual, 1)
				convey.So(stats["mentees"], convey.ShouldEqual, 1)
			})
		})
	})
}
