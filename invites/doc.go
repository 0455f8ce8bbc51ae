// Package invites resolves public guild metadata from an invite code,
// without authentication.
//
// One network call fetches the raw payload, a versioned schema gate
// validates it, and a transformer reshapes it into the stable snapshot
// types in this package. Image fields come back as cdn.ImageRef locators;
// animated-variant probing happens only when the caller asks a locator
// for it, never eagerly during the fetch.
package invites
