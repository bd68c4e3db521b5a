// Package model defines the language-model capability interface consumed by
// the run loop, along with the normalized request/response structures shared
// by all provider adapters. The run loop never parses provider wire formats;
// adapters in the subpackages translate to and from them.
package model
