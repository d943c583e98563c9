// Package domain contains the core entities and value objects of the
// memory diary: captured memories, the capture filter catalog, and the
// export template catalog. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
