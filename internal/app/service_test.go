package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/pathway/internal/adapters/journal"
	service "github.com/okian/pathway/internal/app"
	"github.com/okian/pathway/internal/domain/catalog"
	"github.com/okian/pathway/internal/domain/types"
	"github.com/okian/pathway/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type stubStories struct {
	stories []types.Story
	err     error
	calls   int
}

func (s *stubStories) TopStories(context.Context) ([]types.Story, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.stories, nil
}

func newStartedService(t *testing.T, stories *stubStories) (*service.Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inputs.json")
	svc := service.New(
		service.WithJournal(journal.NewFileJournal(journal.WithPath(path))),
		service.WithStoryProvider(stories),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	return svc, path
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc, _ := newStartedService(t, &stubStories{})

		Convey("Then starting twice is a no-op", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
		})

		Convey("Then stats reflect the started state", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["roles"], ShouldEqual, 3)
		})

		Convey("Then role names come from the catalog", func() {
			So(svc.RoleNames(), ShouldResemble, []string{"Frontend Developer", "Backend Developer", "Data Analyst"})
		})

		svc.Stop()
	})
}

func TestAnalyzeSkillGap(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, path := newStartedService(t, &stubStories{})

		Convey("When analyzing a known role", func() {
			res, err := svc.AnalyzeSkillGap(context.Background(), "Backend Developer", []string{"Java", "SQL", "Git"})
			So(err, ShouldBeNil)

			Convey("Then the gap matches the reference scenario", func() {
				So(res.Matched, ShouldResemble, []string{"Java", "SQL", "Git"})
				So(res.Missing, ShouldResemble, []string{"Spring Boot", "APIs"})
			})

			Convey("And the request lands in the journal after shutdown", func() {
				svc.Stop()

				raw, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				var entries []journal.Entry
				So(json.Unmarshal(raw, &entries), ShouldBeNil)
				So(entries, ShouldHaveLength, 1)
				So(entries[0].TargetRole, ShouldEqual, "Backend Developer")
				So(entries[0].CurrentSkills, ShouldResemble, []string{"java", "sql", "git"})
				So(entries[0].ID, ShouldNotBeEmpty)
				So(entries[0].Timestamp, ShouldNotBeEmpty)
			})

			Convey("And the analysis counter advanced", func() {
				So(svc.GetStats()["analyses"], ShouldEqual, 1)
			})
		})

		Convey("When analyzing an unknown role", func() {
			_, err := svc.AnalyzeSkillGap(context.Background(), "Astronaut", []string{"java"})

			Convey("Then the catalog sentinel surfaces and nothing is journaled", func() {
				So(errors.Is(err, catalog.ErrUnknownRole), ShouldBeTrue)
				svc.Stop()
				_, statErr := os.Stat(path)
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})
	})
}

func TestRoadmapAndNews(t *testing.T) {
	Convey("Given a started service", t, func() {
		stories := &stubStories{stories: []types.Story{{ID: 7, Title: "Hello", Type: "story"}}}
		svc, _ := newStartedService(t, stories)
		defer svc.Stop()

		Convey("When fetching a roadmap with non-canonical casing", func() {
			name, phases, err := svc.Roadmap(context.Background(), "data analyst")
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "Data Analyst")
			So(phases, ShouldHaveLength, 3)
		})

		Convey("When fetching a roadmap for an unknown role", func() {
			_, _, err := svc.Roadmap(context.Background(), "Astronaut")
			So(errors.Is(err, catalog.ErrUnknownRole), ShouldBeTrue)
		})

		Convey("When fetching top stories", func() {
			got, err := svc.TopStories(context.Background())
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].Title, ShouldEqual, "Hello")
			So(stories.calls, ShouldEqual, 1)
		})

		Convey("When the story provider fails", func() {
			stories.err = errors.New("down")
			_, err := svc.TopStories(context.Background())
			So(err, ShouldNotBeNil)
		})
	})
}
