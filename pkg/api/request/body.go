package request

// Body is a raw request body: transport decoding passes it through
// without json unmarshalling.
type Body []byte
