package notify

// Package notify abstracts fire-and-forget desktop notifications so the
// job runner stays usable without a GUI. Delivery failures are swallowed.
