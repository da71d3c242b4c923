package competition

import (
	"fmt"
	"net/url"
	"strings"
)

// Competition is a championship page the dashboard scrapes. Caption is the
// heading text that precedes the standings table on that page.
type Competition struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Caption string `json:"caption"`
	URL     string `json:"url"`
}

func (c Competition) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("competition id is required")
	}
	u, err := url.Parse(c.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("competition %s: url must be absolute http(s)", c.ID)
	}
	return nil
}

// ScheduleURL returns URL with the raw query fragment (such as "all=1")
// merged in so the page lists every match instead of the current week.
func (c Competition) ScheduleURL(allMatchesQuery string) string {
	allMatchesQuery = strings.TrimPrefix(strings.TrimSpace(allMatchesQuery), "?")
	if allMatchesQuery == "" {
		return c.URL
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return c.URL
	}
	extra, err := url.ParseQuery(allMatchesQuery)
	if err != nil {
		return c.URL
	}
	q := u.Query()
	for k, vs := range extra {
		q.Del(k)
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Catalog is the configured set of competitions, in configuration order.
type Catalog struct {
	items []Competition
	byID  map[string]Competition
}

func NewCatalog(items []Competition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Competition, len(items))}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate competition id %q", it.ID)
		}
		if strings.TrimSpace(it.Name) == "" {
			it.Name = it.ID
		}
		c.byID[it.ID] = it
		c.items = append(c.items, it)
	}
	return c, nil
}

func (c *Catalog) List() []Competition {
	return append([]Competition(nil), c.items...)
}

func (c *Catalog) Get(id string) (Competition, bool) {
	it, ok := c.byID[strings.TrimSpace(id)]
	return it, ok
}
