package linequeue

// Package linequeue provides the hand-off buffer between background job
// output and the UI render loop: an unbounded FIFO of text lines, safe for
// multiple producers and a single draining consumer.
