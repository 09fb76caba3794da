// Package migrate moves a project from the classic layout to the new one.
//
// A migration runs in three steps:
//
//  1. Plan lists every file below the source directory, classifies it and
//     refuses to continue when two files share a destination or when a
//     destination already exists (unless overwriting is enabled).
//  2. Execute copies each file to its destination, creating parent
//     directories and keeping the permission bits. Copies run sequentially
//     or through a bounded worker group.
//  3. Unless sources are kept, the migrated files are removed and the
//     directories they leave empty are pruned.
//
// Nothing is written before planning succeeds. A failure while copying
// stops the batch and is returned to the caller; files copied so far stay
// in place and no source has been removed yet.
package migrate
