package v1

// BasePath is the path prefix of every version 1 route
const BasePath = "/v1"
