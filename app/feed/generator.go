package feed

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/rss"

	"github.com/lysyi3m/apogee-rss/app/description"
	"github.com/lysyi3m/apogee-rss/app/launch"
	"github.com/lysyi3m/apogee-rss/app/metrics"
)

const (
	DefaultSiteURL = "https://apogee-rss.vercel.app"

	UnknownTitle     = "Unknown or Classified"
	DefaultCategory  = "Launch"
	DefaultOrbitName = "Space"
)

type Generator struct {
	baseURL  string
	siteURL  string
	version  string
	filterer *Filterer
	now      func() time.Time
}

// NewGenerator builds a generator whose self links point at baseURL and whose
// item links point at siteURL. Empty values fall back to DefaultSiteURL.
func NewGenerator(baseURL, siteURL, version string) *Generator {
	return &Generator{
		baseURL:  strings.TrimSuffix(cmp.Or(baseURL, DefaultSiteURL), "/"),
		siteURL:  strings.TrimSuffix(cmp.Or(siteURL, DefaultSiteURL), "/"),
		version:  version,
		filterer: NewFilterer(),
		now:      time.Now,
	}
}

// Run filters missions for the feed and serializes them as RSS 2.0. The
// document is parsed back before it is returned; one that does not parse is
// reported as an error.
func (g *Generator) Run(missions []launch.Mission, feedConfig *Config) (string, error) {
	if feedConfig == nil {
		return "", fmt.Errorf("feed config is nil")
	}

	kept := g.filterer.Run(missions, feedConfig)
	if feedConfig.MaxItems > 0 && len(kept) > feedConfig.MaxItems {
		kept = kept[:feedConfig.MaxItems]
	}

	items := make([]Item, 0, len(kept))
	for _, m := range kept {
		items = append(items, g.buildItem(m))
	}

	doc := g.render(feedConfig, items)

	if err := validate(doc, len(items)); err != nil {
		metrics.FeedBuildsTotal.WithLabelValues(feedConfig.Name, "invalid").Inc()
		return "", fmt.Errorf("generated feed %s failed validation: %w", feedConfig.Name, err)
	}

	metrics.FeedBuildsTotal.WithLabelValues(feedConfig.Name, "success").Inc()
	metrics.FeedItemsServed.WithLabelValues(feedConfig.Name).Add(float64(len(items)))
	return doc, nil
}

func (g *Generator) buildItem(m launch.Mission) Item {
	published := g.now()
	if t, ok := description.ParseNet(m.Net.String()); ok {
		published = t
	}

	missionType, orbitName := "", ""
	if m.Mission != nil {
		missionType = m.Mission.Type.String()
		if m.Mission.Orbit != nil {
			orbitName = m.Mission.Orbit.Name.String()
		}
	}

	enclosure := cmp.Or(m.Image.String(), description.PlaceholderImageURL)

	return Item{
		GUID:          m.ID.String(),
		Title:         cmp.Or(m.Name.String(), UnknownTitle),
		Link:          g.siteURL + "/missions/" + m.ID.String(),
		Description:   description.Build(m),
		PublishedAt:   published.Format(time.RFC1123Z),
		Categories:    []string{cmp.Or(missionType, DefaultCategory), cmp.Or(orbitName, DefaultOrbitName)},
		EnclosureURL:  enclosure,
		EnclosureType: EnclosureType(enclosure),
	}
}

// EnclosureType maps an image URL to its MIME type.
func EnclosureType(url string) string {
	if strings.HasSuffix(strings.ToLower(url), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}

func (g *Generator) render(feedConfig *Config, items []Item) string {
	var buf bytes.Buffer
	now := g.now()
	link := cmp.Or(feedConfig.Link, g.siteURL)

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", feedConfig.Title, 4)
	g.writeElement(&buf, "link", link, 4)
	g.writeElement(&buf, "description", cmp.Or(feedConfig.Description, feedConfig.Title), 4)

	selfLink := fmt.Sprintf("%s/api/%s", g.baseURL, feedConfig.Name)
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(selfLink)))

	g.writeElement(&buf, "language", feedConfig.Language, 4)
	if feedConfig.TTL > 0 {
		g.writeElement(&buf, "ttl", fmt.Sprintf("%d", feedConfig.TTL), 4)
	}

	imageURL := cmp.Or(feedConfig.ImageURL, g.siteURL+"/apogee-logo.png")
	buf.WriteString("    <image>\n")
	g.writeElement(&buf, "url", imageURL, 6)
	g.writeElement(&buf, "title", feedConfig.Title, 6)
	g.writeElement(&buf, "link", link, 6)
	buf.WriteString("    </image>\n")

	for _, category := range feedConfig.Categories {
		g.writeElement(&buf, "category", category, 4)
	}

	g.writeElement(&buf, "pubDate", now.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "lastBuildDate", now.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("Apogee RSS/%s", cmp.Or(g.version, "dev")), 4)

	for _, item := range items {
		g.writeItem(&buf, item)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String()
}

func (g *Generator) writeItem(buf *bytes.Buffer, item Item) {
	buf.WriteString("    <item>\n")

	g.writeElement(buf, "title", item.Title, 6)
	g.writeElement(buf, "description", item.Description, 6)
	g.writeElement(buf, "link", item.Link, 6)

	if item.GUID != "" {
		buf.WriteString("      <guid isPermaLink=\"false\">")
		xml.EscapeText(buf, []byte(item.GUID))
		buf.WriteString("</guid>\n")
	}

	for _, category := range item.Categories {
		g.writeElement(buf, "category", category, 6)
	}

	g.writeElement(buf, "pubDate", item.PublishedAt, 6)

	// RSS 2.0 requires url, length and type; the image size is unknown.
	if item.EnclosureURL != "" {
		buf.WriteString(fmt.Sprintf("      <enclosure url=\"%s\" length=\"0\" type=\"%s\" />\n",
			html.EscapeString(item.EnclosureURL),
			html.EscapeString(item.EnclosureType)))
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func validate(doc string, expectedItems int) error {
	parsed, err := (&rss.Parser{}).Parse(strings.NewReader(doc))
	if err != nil {
		return err
	}
	if len(parsed.Items) != expectedItems {
		return fmt.Errorf("expected %d items, parsed %d", expectedItems, len(parsed.Items))
	}
	return nil
}
