package auth

const (
	MsgRegisterSuccess = "Thank you for registering. A verification link was sent to your email."
	MsgReVerifySuccess = "Verification email sent."
	MsgVerifySuccess   = "Verification successful."
	MsgAlreadyVerified = "Verification has already been passed."
	MsgUserExists      = "User already exists."
	MsgUserNotFound    = "User not found."
)
