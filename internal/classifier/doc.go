// Package classifier wraps the text-classification model that scores
// journal-entry descriptions against the chart of accounts. It handles
// one-time lazy model loading, retry logic, and response caching.
package classifier
