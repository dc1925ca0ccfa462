// Package lookup builds the name index used to find a person's team.
//
// Every person contributes two keys, "first last" and "last first", both
// normalized with normalize.Key, so a participant can type their name in either
// order. The ordered key list doubles as the corpus for fuzzy suggestions.
//
// Two different people whose names normalize to the same key collide: the later
// one in team order wins. The corpus keeps every key, duplicates included.
package lookup
