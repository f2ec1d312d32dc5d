// Package analytics emits the landing page's product-analytics events to
// a PostHog-compatible collector. The client is constructed explicitly
// and passed to whatever needs it; there is no package-global SDK handle.
package analytics

import (
	"net/url"
	"time"
)

// Platform identifies a download target.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformMac     Platform = "mac"
	PlatformLinux   Platform = "linux"
	PlatformUnknown Platform = "unknown"
)

// Section names the page regions, matching the landing page's section ids.
type Section string

const (
	SectionHero             Section = "hero"
	SectionRealtimeShowcase Section = "realtime-showcase"
	SectionUseCases         Section = "use-cases"
	SectionModels           Section = "models"
	SectionFeatures         Section = "features"
	SectionWorkflows        Section = "workflows"
	SectionDownload         Section = "download"
	SectionCommunity        Section = "community"
	SectionVision           Section = "vision"
	SectionFooter           Section = "footer"
)

// Event names.
const (
	EventNavLinkClicked      = "nav_link_clicked"
	EventLogoClicked         = "logo_clicked"
	EventMobileMenuToggled   = "mobile_menu_toggled"
	EventCTAClicked          = "cta_clicked"
	EventDownloadInitiated   = "download_initiated"
	EventDownloadModalOpened = "download_modal_opened"
	EventSectionViewed       = "section_viewed"
	EventScrollDepthReached  = "scroll_depth_reached"
	EventEngagementTime      = "engagement_time"
	EventVideoPlayed         = "video_played"
	EventVideoProgress       = "video_progress"
	EventVideoPaused         = "video_paused"
	EventModelCardViewed     = "model_card_viewed"
	EventModelCardClicked    = "model_card_clicked"
	EventUseCaseViewed       = "use_case_viewed"
	EventUseCaseClicked      = "use_case_clicked"
	EventFeatureViewed       = "feature_viewed"
	EventWorkflowViewed      = "workflow_viewed"
	EventExternalLinkClicked = "external_link_clicked"
	EventSocialLinkClicked   = "social_link_clicked"
	EventFooterLinkClicked   = "footer_link_clicked"
	EventErrorOccurred       = "error_occurred"
	EventReferralTracked     = "referral_tracked"
	EventPagePerformance     = "page_performance"
	EventWebVital            = "web_vital"
	EventWaitlistSubmitted   = "waitlist_submitted"
	EventWaitlistCompleted   = "waitlist_completed"
	EventWaitlistFailed      = "waitlist_failed"
)

// knownEvents is the closed catalogue accepted from clients.
var knownEvents = map[string]bool{
	EventNavLinkClicked:      true,
	EventLogoClicked:         true,
	EventMobileMenuToggled:   true,
	EventCTAClicked:          true,
	EventDownloadInitiated:   true,
	EventDownloadModalOpened: true,
	EventSectionViewed:       true,
	EventScrollDepthReached:  true,
	EventEngagementTime:      true,
	EventVideoPlayed:         true,
	EventVideoProgress:       true,
	EventVideoPaused:         true,
	EventModelCardViewed:     true,
	EventModelCardClicked:    true,
	EventUseCaseViewed:       true,
	EventUseCaseClicked:      true,
	EventFeatureViewed:       true,
	EventWorkflowViewed:      true,
	EventExternalLinkClicked: true,
	EventSocialLinkClicked:   true,
	EventFooterLinkClicked:   true,
	EventErrorOccurred:       true,
	EventReferralTracked:     true,
	EventPagePerformance:     true,
	EventWebVital:            true,
	EventWaitlistSubmitted:   true,
	EventWaitlistCompleted:   true,
	EventWaitlistFailed:      true,
}

// Known reports whether name is part of the event catalogue.
func Known(name string) bool {
	return knownEvents[name]
}

// Event is one analytics capture. DistinctID and Timestamp are filled
// in by the tracker/client when left zero.
type Event struct {
	Name       string         `json:"event"`
	DistinctID string         `json:"distinct_id"`
	Timestamp  time.Time      `json:"timestamp"`
	Properties map[string]any `json:"properties,omitempty"`
}

func NavClick(linkName, href string) Event {
	return Event{Name: EventNavLinkClicked, Properties: map[string]any{
		"link_name": linkName,
		"href":      href,
		"location":  "navigation",
	}}
}

func CTAClick(ctaName string, location Section, variant string) Event {
	if variant == "" {
		variant = "primary"
	}
	return Event{Name: EventCTAClicked, Properties: map[string]any{
		"cta_name": ctaName,
		"location": string(location),
		"variant":  variant,
	}}
}

func DownloadInitiated(platform Platform, version string, location Section) Event {
	return Event{Name: EventDownloadInitiated, Properties: map[string]any{
		"platform": string(platform),
		"version":  version,
		"location": string(location),
	}}
}

func SectionViewed(section Section) Event {
	return Event{Name: EventSectionViewed, Properties: map[string]any{
		"section": string(section),
	}}
}

func ScrollDepthReached(percentage int) Event {
	return Event{Name: EventScrollDepthReached, Properties: map[string]any{
		"percentage": percentage,
	}}
}

func VideoPlayed(videoID string, location Section) Event {
	return Event{Name: EventVideoPlayed, Properties: map[string]any{
		"video_id": videoID,
		"location": string(location),
	}}
}

func ModelCardViewed(modelName string, index int) Event {
	return Event{Name: EventModelCardViewed, Properties: map[string]any{
		"model_name": modelName,
		"card_index": index,
	}}
}

func ModelCardClicked(modelName, href string) Event {
	return Event{Name: EventModelCardClicked, Properties: map[string]any{
		"model_name": modelName,
		"href":       href,
	}}
}

func UseCaseViewed(useCaseID, title string) Event {
	return Event{Name: EventUseCaseViewed, Properties: map[string]any{
		"use_case_id": useCaseID,
		"title":       title,
	}}
}

func UseCaseClicked(useCaseID, title string) Event {
	return Event{Name: EventUseCaseClicked, Properties: map[string]any{
		"use_case_id": useCaseID,
		"title":       title,
	}}
}

func WorkflowViewed(workflowID, title string) Event {
	return Event{Name: EventWorkflowViewed, Properties: map[string]any{
		"workflow_id": workflowID,
		"title":       title,
	}}
}

// ExternalLink records an outbound click. The destination host is
// derived from href; unparsable hrefs leave it empty.
func ExternalLink(linkName, href string, location Section) Event {
	domain := ""
	if u, err := url.Parse(href); err == nil {
		domain = u.Hostname()
	}
	return Event{Name: EventExternalLinkClicked, Properties: map[string]any{
		"link_name": linkName,
		"href":      href,
		"location":  string(location),
		"domain":    domain,
	}}
}

func WaitlistSubmitted(source string) Event {
	return Event{Name: EventWaitlistSubmitted, Properties: map[string]any{
		"source": source,
	}}
}

func WaitlistCompleted(alreadySubscribed bool) Event {
	return Event{Name: EventWaitlistCompleted, Properties: map[string]any{
		"already_subscribed": alreadySubscribed,
	}}
}

func WaitlistFailed(reason string) Event {
	return Event{Name: EventWaitlistFailed, Properties: map[string]any{
		"reason": reason,
	}}
}
