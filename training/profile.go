package training

import (
	"fmt"
	"strings"
)

// Intensity grades how far a profile pushes the agent's capabilities.
type Intensity string

const (
	IntensityBasic        Intensity = "basic"
	IntensityIntermediate Intensity = "intermediate"
	IntensityAdvanced     Intensity = "advanced"
	IntensityLegendary    Intensity = "legendary"
)

// Focus selects the primary emphasis of a profile.
type Focus string

const (
	FocusAnalytical    Focus = "analytical"    // problem-solving, reasoning, analysis
	FocusInterpersonal Focus = "interpersonal" // communication, leadership, collaboration
	FocusCreative      Focus = "creative"      // innovation, creative thinking, design
	FocusEthical       Focus = "ethical"       // moral reasoning, ethics, values
	FocusComprehensive Focus = "comprehensive" // all domains balanced
)

// Profile defines one training configuration: which skill domains to include,
// at which intensity, with which focus. Domains holds catalog keys; unknown
// keys are ignored during assembly.
type Profile struct {
	Name               string
	Description        string
	Domains            []string
	Intensity          Intensity
	Focus              Focus
	CustomInstructions string
}

// SkillDomains resolves the profile's domain keys against the catalog,
// preserving order and dropping unknown keys.
func (p Profile) SkillDomains() []SkillDomain {
	domains := make([]SkillDomain, 0, len(p.Domains))
	for _, key := range p.Domains {
		if d, ok := Domain(key); ok {
			domains = append(domains, d)
		}
	}
	return domains
}

// Predefined profile names.
const (
	ProfileLegendarySage       = "legendary_sage"
	ProfileAnalyticalMaster    = "analytical_master"
	ProfileCommunicationExpert = "communication_expert"
	ProfileInnovationGenius    = "innovation_genius"
	ProfileEthicalLeader       = "ethical_leader"
	ProfileBalancedExpert      = "balanced_expert"
)

var profiles = map[string]Profile{
	ProfileLegendarySage: {
		Name:        "Legendary Sage",
		Description: "Master-level capabilities across all domains",
		Domains:     DomainKeys(),
		Intensity:   IntensityLegendary,
		Focus:       FocusComprehensive,
	},
	ProfileAnalyticalMaster: {
		Name:        "Analytical Master",
		Description: "Exceptional analytical and problem-solving abilities",
		Domains:     []string{DomainProblemSolving, DomainMetaCognition, DomainExpertise},
		Intensity:   IntensityLegendary,
		Focus:       FocusAnalytical,
	},
	ProfileCommunicationExpert: {
		Name:        "Communication Expert",
		Description: "Master communicator and interpersonal specialist",
		Domains:     []string{DomainCommunication, DomainLeadership, DomainEthicalReasoning},
		Intensity:   IntensityLegendary,
		Focus:       FocusInterpersonal,
	},
	ProfileInnovationGenius: {
		Name:        "Innovation Genius",
		Description: "Creative problem-solver and innovation catalyst",
		Domains:     []string{DomainCreativeThinking, DomainProblemSolving, DomainExpertise},
		Intensity:   IntensityLegendary,
		Focus:       FocusCreative,
	},
	ProfileEthicalLeader: {
		Name:        "Ethical Leader",
		Description: "Principled leader with strong moral reasoning",
		Domains:     []string{DomainEthicalReasoning, DomainLeadership, DomainCommunication},
		Intensity:   IntensityLegendary,
		Focus:       FocusEthical,
	},
	ProfileBalancedExpert: {
		Name:        "Balanced Expert",
		Description: "Well-rounded expert with advanced capabilities",
		Domains:     []string{DomainProblemSolving, DomainCommunication, DomainExpertise, DomainEthicalReasoning},
		Intensity:   IntensityAdvanced,
		Focus:       FocusComprehensive,
	},
}

// GetProfile returns a predefined profile by name.
func GetProfile(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q, available profiles: %s",
			name, strings.Join(ProfileNames(), ", "))
	}
	return p, nil
}

// ProfileNames returns every predefined profile name in stable order.
func ProfileNames() []string {
	return []string{
		ProfileLegendarySage,
		ProfileAnalyticalMaster,
		ProfileCommunicationExpert,
		ProfileInnovationGenius,
		ProfileEthicalLeader,
		ProfileBalancedExpert,
	}
}
