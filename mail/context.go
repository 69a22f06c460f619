package mail

import "github.com/gin-gonic/gin"

const senderKey = "mail_sender"

func SetSenderToContext(s Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(senderKey, s)
		c.Next()
	}
}

func SenderInstance(c *gin.Context) Sender {
	v, ok := c.Get(senderKey)
	if !ok {
		return nil
	}
	s, _ := v.(Sender)
	return s
}
