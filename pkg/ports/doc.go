/*
Package ports defines the driven ports (interfaces) of the analyzer.

These interfaces decouple the parsing core from the concrete root finders,
predefined path tables and caches, so each can be swapped without touching
the traversal.

# Key Interfaces

  - MorphologicParser: Parses words into candidate analyses.
  - RootFinder: Finds dictionary or synthetic roots for a prefix of a word.
  - PathProvider: Supplies authored paths for irregular roots.
  - ParseCache: Memoizes parse results, in process or shared (e.g. Redis).
*/
package ports
