package types

type ContextKey string

// AppKey carries the assembled application through the command context.
const AppKey ContextKey = "app"
