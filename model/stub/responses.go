package stub

// cannedResponses returns the offline answers keyed by training profile.
// Abbreviated renderings of representative expert responses; the keys line up
// with the predefined profiles in the training package.
func cannedResponses() map[string]string {
	return map[string]string{
		"legendary_sage": `As a legendary sage with master-level capabilities across all domains, I approach this challenge with comprehensive wisdom.

Multi-Domain Analysis: drawing from strategy, psychology and systems thinking, this is a transformation challenge requiring coordinated action across several dimensions.

Strategic Framework: align stakeholders around a shared vision, phase the implementation to balance urgency with sustainability, address resistance through engagement and incentives, and establish success metrics linking the competing goals.

The path forward requires patience, wisdom, and the courage to make difficult decisions for long-term benefit.`,

		"analytical_master": `Comprehensive Analysis Framework:

Primary factors: adoption acceleration, adaptation capacity, and the responsiveness of the surrounding systems.

Assumptions to question: linear progression, uniform impact, and the reliability of historical precedent.

Scenario analysis: optimistic, moderate and pessimistic outcomes hinge on how quickly supporting infrastructure adapts. Critical dependencies determine which scenario materializes.`,

		"communication_expert": `Audience-Adapted Explanation:

For a curious twelve-year-old: imagine a magical coin that is heads AND tails until you look at it.

For executives: this is a paradigm shift with strategic implications - consider market timing, competitive advantage and risk mitigation.

For students: study the underlying mechanics and their mathematical foundations before the applications.

Each explanation maintains accuracy while matching the audience's context, prior knowledge, and decision-making needs.`,

		"innovation_genius": `Reimagining the problem: shift the paradigm from managing scarcity to choreographing abundance.

1. Gamified community networks that turn prevention into participation.
2. Time-shifted distribution matching predicted surplus with pre-registered demand.
3. Process integration hubs that convert the waste stream into a raw-material commodity.

Cross-pollination insight: combining circular economy, behavioral economics and network theory creates emergent solutions that linear thinking misses.`,

		"legendary_generic": `As an AI agent enhanced with legendary training capabilities, I bring together multi-domain expertise, advanced problem-solving, exceptional communication, ethical reasoning and meta-cognitive awareness. I approach your question with the wisdom and capabilities that legendary training provides.`,

		"default": `Thank you for your question. I approach this with systematic thinking: break down the key components, consider multiple perspectives, and develop an evidence-based recommendation that respects both immediate needs and long-term consequences.`,
	}
}
