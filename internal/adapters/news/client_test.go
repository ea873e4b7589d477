package news_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/okian/pathway/internal/adapters/news"
	"github.com/okian/pathway/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// upstream builds a fake ranking service. items maps id -> raw JSON body;
// ids outside the map return a JSON null like the real service does.
func upstream(ids string, items map[int64]string, fail map[int64]bool) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ids))
	})
	mux.HandleFunc("/item/", func(w http.ResponseWriter, r *http.Request) {
		var id int64
		if _, err := fmt.Sscanf(r.URL.Path, "/item/%d.json", &id); err != nil {
			http.NotFound(w, r)
			return
		}
		if fail[id] {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		body, ok := items[id]
		if !ok {
			body = "null"
		}
		_, _ = w.Write([]byte(body))
	})
	return httptest.NewServer(mux)
}

func storyItem(id int64, typ string) string {
	return fmt.Sprintf(`{"id":%d,"title":"Story %d","url":"https://example.com/%d","score":%d,"time":1700000000,"type":%q,"by":"author%d"}`,
		id, id, id, id*10, typ, id)
}

func TestTopStories(t *testing.T) {
	Convey("Given an upstream with ten ranked items where two are jobs", t, func() {
		items := map[int64]string{}
		for id := int64(1); id <= 10; id++ {
			typ := "story"
			if id == 3 || id == 7 {
				typ = "job"
			}
			items[id] = storyItem(id, typ)
		}
		srv := upstream("[1,2,3,4,5,6,7,8,9,10]", items, nil)
		defer srv.Close()

		client := news.NewClient(news.WithBaseURL(srv.URL))

		Convey("When fetching top stories", func() {
			stories, err := client.TopStories(context.Background())
			So(err, ShouldBeNil)

			Convey("Then at most five stories survive, all type story, in rank order", func() {
				So(stories, ShouldHaveLength, 5)
				var prev int64
				for _, s := range stories {
					So(s.Type, ShouldEqual, "story")
					So(s.ID, ShouldBeGreaterThan, prev)
					prev = s.ID
				}
				So(stories[0].ID, ShouldEqual, 1)
				So(stories[2].ID, ShouldEqual, 4) // 3 was a job
			})

			Convey("And timestamps are converted to RFC3339", func() {
				ts, parseErr := time.Parse(time.RFC3339, stories[0].Time)
				So(parseErr, ShouldBeNil)
				So(ts.Unix(), ShouldEqual, 1700000000)
			})
		})
	})

	Convey("Given items with absent optional fields", t, func() {
		items := map[int64]string{
			1: `{"id":1,"type":"story"}`,
			2: storyItem(2, "story"),
		}
		srv := upstream("[1,2]", items, nil)
		defer srv.Close()

		client := news.NewClient(news.WithBaseURL(srv.URL))

		Convey("When fetching top stories", func() {
			stories, err := client.TopStories(context.Background())
			So(err, ShouldBeNil)
			So(stories, ShouldHaveLength, 2)

			Convey("Then defaults fill the gaps", func() {
				So(stories[0].Title, ShouldEqual, "No title")
				So(stories[0].URL, ShouldEqual, "https://news.ycombinator.com/item?id=1")
				So(stories[0].Score, ShouldEqual, 0)
				So(stories[0].By, ShouldEqual, "Unknown")
				So(stories[0].Time, ShouldBeEmpty)
			})
		})
	})

	Convey("Given an upstream where one item fetch fails and one is null", t, func() {
		items := map[int64]string{}
		for id := int64(1); id <= 6; id++ {
			items[id] = storyItem(id, "story")
		}
		srv := upstream("[1,2,3,4,5,6,7]", items, map[int64]bool{2: true})
		defer srv.Close()

		client := news.NewClient(news.WithBaseURL(srv.URL))

		Convey("When fetching top stories", func() {
			stories, err := client.TopStories(context.Background())

			Convey("Then the failed and null items are dropped, not the batch", func() {
				So(err, ShouldBeNil)
				So(stories, ShouldHaveLength, 5)
				So(stories[0].ID, ShouldEqual, 1)
				So(stories[1].ID, ShouldEqual, 3) // 2 failed
			})
		})
	})

	Convey("Given fewer ranked ids than the story limit", t, func() {
		items := map[int64]string{1: storyItem(1, "story"), 2: storyItem(2, "comment")}
		srv := upstream("[1,2]", items, nil)
		defer srv.Close()

		client := news.NewClient(news.WithBaseURL(srv.URL))

		Convey("Then only the surviving stories come back", func() {
			stories, err := client.TopStories(context.Background())
			So(err, ShouldBeNil)
			So(stories, ShouldHaveLength, 1)
		})
	})

	Convey("Given a configured fetch count and story limit", t, func() {
		items := map[int64]string{}
		for id := int64(1); id <= 10; id++ {
			items[id] = storyItem(id, "story")
		}
		srv := upstream("[1,2,3,4,5,6,7,8,9,10]", items, nil)
		defer srv.Close()

		client := news.NewClient(
			news.WithBaseURL(srv.URL),
			news.WithFetchCount(3),
			news.WithStoryLimit(2),
		)

		Convey("Then both bounds are honored", func() {
			stories, err := client.TopStories(context.Background())
			So(err, ShouldBeNil)
			So(stories, ShouldHaveLength, 2)
			So(stories[1].ID, ShouldEqual, 2)
		})
	})
}

func TestTopStoriesUpstreamFailure(t *testing.T) {
	Convey("Given an unreachable upstream", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		client := news.NewClient(news.WithBaseURL(srv.URL), news.WithTimeout(time.Second))

		Convey("Then the whole call fails as upstream unavailable", func() {
			_, err := client.TopStories(context.Background())
			So(err, ShouldNotBeNil)
			So(errors.Is(err, news.ErrUpstream), ShouldBeTrue)
		})
	})

	Convey("Given an upstream returning a non-2xx ranking list", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client := news.NewClient(news.WithBaseURL(srv.URL))

		Convey("Then the whole call fails as upstream unavailable", func() {
			_, err := client.TopStories(context.Background())
			So(errors.Is(err, news.ErrUpstream), ShouldBeTrue)
		})
	})

	Convey("Given an upstream returning malformed JSON for the ranking list", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client := news.NewClient(news.WithBaseURL(srv.URL))

		Convey("Then the whole call fails as upstream unavailable", func() {
			_, err := client.TopStories(context.Background())
			So(errors.Is(err, news.ErrUpstream), ShouldBeTrue)
		})
	})
}
