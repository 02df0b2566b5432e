package quarantine

import "fmt"

// Reason classifies why a piece of content was quarantined.
type Reason string

const (
	ReasonNsfw           Reason = "nsfw"
	ReasonInappropriate  Reason = "inappropriate"
	ReasonViolence       Reason = "violence"
	ReasonHarassment     Reason = "harassment"
	ReasonMisinformation Reason = "misinformation"
	ReasonSpam           Reason = "spam"
	ReasonCopyright      Reason = "copyright"
	ReasonPrivacy        Reason = "privacy"
	ReasonLowQuality     Reason = "lowQuality"
	ReasonIrrelevant     Reason = "irrelevant"
	ReasonHoax           Reason = "hoax"
	ReasonAutomated      Reason = "automated"
	ReasonReported       Reason = "reported"
	ReasonOther          Reason = "other"
)

// Reasons returns every known reason, ordered by descending severity.
func Reasons() []Reason {
	return []Reason{
		ReasonNsfw,
		ReasonViolence,
		ReasonInappropriate,
		ReasonHarassment,
		ReasonMisinformation,
		ReasonCopyright,
		ReasonPrivacy,
		ReasonHoax,
		ReasonSpam,
		ReasonReported,
		ReasonAutomated,
		ReasonIrrelevant,
		ReasonOther,
		ReasonLowQuality,
	}
}

// Severity is advisory, used for sorting and triage. It never participates
// in access decisions.
func (r Reason) Severity() int {
	switch r {
	case ReasonNsfw, ReasonViolence:
		return 3
	case ReasonInappropriate, ReasonHarassment, ReasonMisinformation, ReasonCopyright, ReasonPrivacy:
		return 2
	case ReasonHoax, ReasonSpam, ReasonReported, ReasonAutomated, ReasonIrrelevant, ReasonOther:
		return 1
	case ReasonLowQuality:
		return 0
	default:
		return 0
	}
}

func (r Reason) Label() string {
	switch r {
	case ReasonNsfw:
		return "NSFW Content"
	case ReasonInappropriate:
		return "Inappropriate"
	case ReasonViolence:
		return "Violence"
	case ReasonHarassment:
		return "Harassment"
	case ReasonMisinformation:
		return "Misinformation"
	case ReasonSpam:
		return "Spam"
	case ReasonCopyright:
		return "Copyright"
	case ReasonPrivacy:
		return "Privacy Violation"
	case ReasonLowQuality:
		return "Low Quality"
	case ReasonIrrelevant:
		return "Irrelevant"
	case ReasonHoax:
		return "Hoax"
	case ReasonAutomated:
		return "Automated Flag"
	case ReasonReported:
		return "User Reported"
	case ReasonOther:
		return "Other"
	default:
		return string(r)
	}
}

func (r Reason) Description() string {
	switch r {
	case ReasonNsfw:
		return "Explicit or sensitive material not suitable for public display"
	case ReasonInappropriate:
		return "Content violating community standards"
	case ReasonViolence:
		return "Depictions of violence or gore"
	case ReasonHarassment:
		return "Content targeting or harassing an individual"
	case ReasonMisinformation:
		return "Potentially misleading or false information"
	case ReasonSpam:
		return "Unsolicited or repetitive content"
	case ReasonCopyright:
		return "Possible copyright infringement"
	case ReasonPrivacy:
		return "Exposes personal or identifying information"
	case ReasonLowQuality:
		return "Content below minimum quality standards"
	case ReasonIrrelevant:
		return "Unrelated to the reported sighting"
	case ReasonHoax:
		return "Suspected fabricated sighting"
	case ReasonAutomated:
		return "Flagged by automated analysis"
	case ReasonReported:
		return "Flagged by community reports"
	case ReasonOther:
		return "See custom reason"
	default:
		return string(r)
	}
}

func (r Reason) Valid() bool {
	switch r {
	case ReasonNsfw, ReasonInappropriate, ReasonViolence, ReasonHarassment,
		ReasonMisinformation, ReasonSpam, ReasonCopyright, ReasonPrivacy,
		ReasonLowQuality, ReasonIrrelevant, ReasonHoax, ReasonAutomated,
		ReasonReported, ReasonOther:
		return true
	default:
		return false
	}
}

// ParseReason converts an external string into a Reason.
func ParseReason(s string) (Reason, error) {
	r := Reason(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown quarantine reason: %q", s)
	}
	return r, nil
}
