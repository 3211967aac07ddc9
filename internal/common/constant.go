package common

// TokenEnvVar is the environment variable consulted for the bot token when it
// is not given in the JSON config or on the command line.
const TokenEnvVar = "WIDGET_BOT_TOKEN"
