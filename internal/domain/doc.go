// Package domain defines the core business entities of the blogging
// platform: accounts, users, blog posts, categories, tags, comments and
// follower edges. Entities carry their own invariants (constructors and
// Validate methods), allow-listed bulk assignment via SetValues, and the
// save-time hooks that derive slugs and refresh update timestamps.
package domain
