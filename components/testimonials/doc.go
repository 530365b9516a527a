// Package testimonials serves the testimonial carousel: a JSON read endpoint
// for any slide, and an event stream that owns one carousel session with
// autoplay. Sessions are driven by POSTs keyed by the id announced on the
// stream and are discarded when the stream closes.
package testimonials
