// Package videoembed turns public video page links into player URLs that can
// be placed in an iframe.
package videoembed

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	PlatformYouTube = "youtube"
	PlatformVimeo   = "vimeo"
)

var timePattern = regexp.MustCompile(`(?i)(\d+)(h|m|s)`) // t=1h2m3s

// Embed describes a recognised video link.
type Embed struct {
	Platform string
	Source   string
	EmbedURL string
}

// Parse recognises YouTube and Vimeo links. Anything else reports false.
func Parse(raw string) (Embed, bool) {
	source := strings.TrimSpace(raw)
	parsed, err := url.Parse(source)
	if err != nil || parsed == nil {
		return Embed{}, false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Embed{}, false
	}
	if parsed.Hostname() == "" {
		return Embed{}, false
	}

	if embed, ok := parseYouTube(parsed, source); ok {
		return embed, true
	}
	if embed, ok := parseVimeo(parsed, source); ok {
		return embed, true
	}
	return Embed{}, false
}

// EmbedURL returns the player URL for raw, or "" when the link is not recognised.
func EmbedURL(raw string) string {
	embed, ok := Parse(raw)
	if !ok {
		return ""
	}
	return embed.EmbedURL
}

func parseYouTube(u *url.URL, source string) (Embed, bool) {
	host := strings.ToLower(u.Hostname())
	var videoID string

	switch {
	case host == "youtu.be":
		videoID = firstSegment(strings.TrimPrefix(u.Path, "/"))
	case isHostOrSubdomain(host, "youtube.com"):
		path := strings.Trim(u.Path, "/")
		switch {
		case path == "watch":
			videoID = u.Query().Get("v")
		case strings.HasPrefix(path, "shorts/"):
			videoID = strings.TrimPrefix(path, "shorts/")
		case strings.HasPrefix(path, "embed/"):
			videoID = strings.TrimPrefix(path, "embed/")
		case strings.HasPrefix(path, "live/"):
			videoID = strings.TrimPrefix(path, "live/")
		}
		videoID = firstSegment(videoID)
	default:
		return Embed{}, false
	}

	if videoID == "" {
		return Embed{}, false
	}

	values := url.Values{}
	values.Set("rel", "0")
	values.Set("modestbranding", "1")
	values.Set("playsinline", "1")
	if start := youTubeStart(u); start > 0 {
		values.Set("start", strconv.Itoa(start))
	}

	return Embed{
		Platform: PlatformYouTube,
		Source:   source,
		EmbedURL: fmt.Sprintf("https://www.youtube.com/embed/%s?%s", videoID, values.Encode()),
	}, true
}

func parseVimeo(u *url.URL, source string) (Embed, bool) {
	host := strings.ToLower(u.Hostname())
	if !isHostOrSubdomain(host, "vimeo.com") {
		return Embed{}, false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if host == "player.vimeo.com" && len(segments) == 2 && segments[0] == "video" {
		segments = segments[1:]
	}
	for _, segment := range segments {
		if onlyDigits(segment) {
			return Embed{
				Platform: PlatformVimeo,
				Source:   source,
				EmbedURL: "https://player.vimeo.com/video/" + segment,
			}, true
		}
	}
	return Embed{}, false
}

func youTubeStart(u *url.URL) int {
	query := u.Query()
	if value := query.Get("start"); value != "" {
		return parseDuration(value)
	}
	if value := query.Get("t"); value != "" {
		return parseDuration(value)
	}
	return 0
}

func parseDuration(value string) int {
	trimmed := strings.TrimSpace(value)
	if onlyDigits(trimmed) {
		seconds, err := strconv.Atoi(trimmed)
		if err == nil && seconds > 0 {
			return seconds
		}
		return 0
	}

	total := 0
	for _, match := range timePattern.FindAllStringSubmatch(trimmed, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil || n <= 0 {
			continue
		}
		switch strings.ToLower(match[2]) {
		case "h":
			total += n * 3600
		case "m":
			total += n * 60
		case "s":
			total += n
		}
	}
	return total
}

func firstSegment(path string) string {
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i]
	}
	return path
}

func onlyDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return value != ""
}

func isHostOrSubdomain(host, domain string) bool {
	if host == "" || domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}
