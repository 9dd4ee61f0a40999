// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps API roots and collections in memory between requests.
//
// DirectoryCache wraps a store.DirectoryRepository with expirable LRU maps.
// Entries expire after the configured TTL; writes through the cache purge it.
// When several server instances share a database, an Invalidator broadcasts
// directory changes over Redis pub/sub so every instance purges its cache.
package cache
