// Package booking builds deep links into the carrier's public flight list.
package booking

import (
	"net/url"
	"strconv"
	"strings"
)

type LinkParams struct {
	Origin       string
	Destination  string
	OutboundDate string
	InboundDate  string
	AdultCount   int
}

// BuildLink maps a trip onto the booking site's query-string format. The
// parameter order matters to nobody but is kept stable for readability of
// the resulting URL.
func BuildLink(baseURL string, p LinkParams) string {
	journeyType := "OWFLT"
	if p.InboundDate != "" {
		journeyType = "RTFLT"
	}

	pairs := [][2]string{
		{"origin", p.Origin},
		{"destination", p.Destination},
		{"outboundDate", p.OutboundDate},
		{"adultCount", strconv.Itoa(p.AdultCount)},
		{"youngAdultCount", "0"},
		{"childCount", "0"},
		{"infantCount", "0"},
		{"cabin", "M"},
		{"ticketFlexibility", "LOWEST"},
		{"journeyType", journeyType},
		{"source", "false"},
	}
	if p.InboundDate != "" {
		pairs = append(pairs, [2]string{"inboundDate", p.InboundDate})
	}

	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, pair[0]+"="+url.QueryEscape(pair[1]))
	}

	return baseURL + "?" + strings.Join(parts, "&")
}
