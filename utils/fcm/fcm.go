package fcm

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils/events"
)

// Prefix untuk nama topic di Firebase
const FCMTopicPrefix = "topic_"

var fcmClient *messaging.Client

// Init menyiapkan Firebase Admin SDK. Dipanggil eksplisit dari main
// supaya binary migrate dan test tidak ikut menghubungi Firebase.
func Init(ctx context.Context, projectID string) error {
	log.Println("Initializing Firebase Admin SDK...")
	config := &firebase.Config{ProjectID: projectID}

	app, err := firebase.NewApp(ctx, config)
	if err != nil {
		return fmt.Errorf("initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("getting Firebase Messaging client: %w", err)
	}

	fcmClient = client
	log.Println("✅ Firebase Admin SDK initialized successfully.")
	return nil
}

// Topic per role, contoh: role "pimpinan" -> "topic_pimpinan"
func mapRoleToTopic(role models.Role) string {
	return FCMTopicPrefix + string(role)
}

// Topic per user, untuk notifikasi yang tertuju ke satu orang (disposisi)
func mapUserToTopic(userID uint) string {
	return FCMTopicPrefix + "user_" + strconv.FormatUint(uint64(userID), 10)
}

// Helper kirim notifikasi
func SendNotificationToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if fcmClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority:     "high",
			Notification: &messaging.AndroidNotification{ChannelID: "default_channel"},
		},
	}

	_, err := fcmClient.Send(ctx, msg)
	return err
}

func StartNotifierConsumer(ctx context.Context) {
	log.Println("✅ FCM Notifier Consumer started")

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events.SuratEventBus:

			// Goroutine agar tidak blocking
			go func(event events.SuratEvent) {
				sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				data := map[string]string{
					"surat_id": strconv.FormatUint(uint64(event.SuratID), 10),
					"status":   event.Status,
					"event":    string(event.Type),
				}

				switch event.Type {

				// Surat masuk baru dicatat -> beritahu pimpinan, dan tujuan
				// surat bila tercantum
				case events.SuratMasukDicatat:
					title := "Surat Masuk Baru"
					body := fmt.Sprintf("Surat %s telah dicatat: %s", event.NomorSurat, event.Perihal)
					SendNotificationToTopic(sendCtx, mapRoleToTopic(models.RolePimpinan), title, body, data)
					if event.KepadaID != 0 {
						SendNotificationToTopic(sendCtx, mapUserToTopic(event.KepadaID), title, body, data)
					}

				// Surat keluar dapat nomor -> beritahu tata usaha
				case events.SuratKeluarDibuat:
					title := "Surat Keluar Baru"
					body := fmt.Sprintf("Surat keluar mendapat nomor %s", event.NomorSurat)
					SendNotificationToTopic(sendCtx, mapRoleToTopic(models.RoleTataUsaha), title, body, data)

				// Disposisi baru -> langsung ke penerimanya
				case events.DisposisiDibuat:
					title := "Disposisi Baru"
					body := fmt.Sprintf("Surat %s didisposisikan kepada Anda.", event.NomorSurat)
					SendNotificationToTopic(sendCtx, mapUserToTopic(event.KepadaID), title, body, data)

				// Perubahan status penting
				case events.StatusBerubah:
					switch event.Status {
					case string(models.KeluarTerkirim):
						title := "Surat Terkirim"
						body := fmt.Sprintf("Surat %s ditandai terkirim.", event.NomorSurat)
						SendNotificationToTopic(sendCtx, mapRoleToTopic(models.RoleTataUsaha), title, body, data)
					// models.MasukDiarsipkan and models.KeluarDiarsipkan are both
					// "diarsipkan"; listing both is a duplicate-case compile error.
					case string(models.MasukDiarsipkan):
						title := "Surat Diarsipkan"
						body := fmt.Sprintf("Surat %s masuk arsip.", event.NomorSurat)
						SendNotificationToTopic(sendCtx, mapRoleToTopic(models.RoleTataUsaha), title, body, data)
					}
				}
			}(e)
		}
	}
}
