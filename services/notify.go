// file: services/notify.go
package services

import (
	"NovaCTF/models"
	"log"

	"gorm.io/gorm"
)

// Mailer 邮件发送的窄接口，真实投递由外部服务实现
type Mailer interface {
	Send(to, subject, body string) error
}

// LogMailer 默认实现，只记日志不真正发信
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("Mail to %s: %s", to, subject)
	return nil
}

// PublishNotification 创建公告；sendEmail 为真时向所有活跃用户群发。
// 单个收件人投递失败只记日志，不影响公告本身。
func PublishNotification(db *gorm.DB, mailer Mailer, notification *models.Notification, sendEmail bool) error {
	if err := db.Create(notification).Error; err != nil {
		return err
	}

	if !sendEmail || mailer == nil {
		return nil
	}

	var users []models.User
	if err := db.Where("status = ?", models.StatusActive).Find(&users).Error; err != nil {
		log.Printf("Notification %d: listing recipients failed: %v", notification.ID, err)
		return nil
	}
	for _, u := range users {
		if err := mailer.Send(u.Email, notification.Title, notification.Content); err != nil {
			log.Printf("Notification %d: mail to %s failed: %v", notification.ID, u.Email, err)
		}
	}
	return nil
}
