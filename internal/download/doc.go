package download

// Package download fetches remote install resources over HTTP using
// github.com/go-resty/resty/v2. Response bodies are streamed straight into the
// caller's writer; nothing is buffered in memory and nothing is retried.
