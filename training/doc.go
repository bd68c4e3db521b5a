// Package training assembles expert system prompts from a catalog of skill
// domains. A Profile bundles domains with an intensity and a focus; the
// Trainer renders the bundle into one instruction string and can build a
// ready-to-run agent from it. The package is pure data plus string assembly
// and adds no control flow of its own.
package training
