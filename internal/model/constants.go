package model

import "time"

const DefaultConnectTimeout = 2 * time.Second

const HeaderContentType = "Content-Type"
const HeaderAuthorization = "Authorization"
const BearerPrefix = "Bearer "

type ContextKey string

const KeyContextLogger ContextKey = "logger"
const KeyContextIdentity ContextKey = "identity"

const KeyLoggerError = "error"
