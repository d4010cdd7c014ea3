// Package session is the client-side session and user-directory state store
// for the storefront application. It owns the single shared representation of
// who is logged in, the roster visible to an administrator, and the lifecycle
// of every asynchronous account operation.
//
// Event model:
//   - Commands (login, register, roster fetches, profile updates, role
//     grants, deletion, password recovery) are dispatched through the Store
//     and produce the three-phase sequence pending, then fulfilled or
//     rejected. The pending event applies synchronously; the terminal event
//     applies whenever the transport resolves, in whatever order commands
//     happen to finish.
//   - Reduce is the pure transition function. Each application swaps the
//     state snapshot atomically, so readers never observe a torn write, but
//     nothing orders concurrently in-flight commands: overlapping roster
//     writes resolve last-applied-wins by design.
//
// Failure shape:
//   - Every rejection funnels into one normalized error string. A structured
//     server message passes through verbatim, anything else collapses into
//     FallbackErrorMessage. Neither Error nor Message is cleared by a later
//     success; consumers combine them with IsLoading to tell in-flight,
//     succeeded, and failed apart.
//
// Credentials:
//   - Login persists the returned token through the TokenStore and installs
//     it on the shared Credentials context that transports read per request.
//     Logout clears the context, so there is no hidden client default to
//     tear down.
package session
