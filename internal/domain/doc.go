// Package domain defines the entities the banking client exchanges with the
// backend and the interfaces its layers are wired through.
//
// Concrete shapes live in the types subpackage and behavioural contracts in
// the interfaces subpackage; both are re-exported here as aliases so most
// code only imports bankctl/internal/domain.
package domain
