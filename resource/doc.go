/*
Package resource provides value types for identifying engine resources.

A Path is a normalized depot path with the engine's 64-bit FNV-1a hash; an
AsyncRef wraps a Path for deferred resolution by the engine runtime. Loading
and resolving resources is not part of this module.
*/
package resource
