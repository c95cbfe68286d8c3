package nnconnect

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/user"
	"strings"
	"time"

	"contenttype/config"

	"github.com/colinmarc/hdfs/v2"
	"github.com/colinmarc/hdfs/v2/hadoopconf"
	krb "github.com/jcmturner/gokrb5/v8/client"
	krbconfig "github.com/jcmturner/gokrb5/v8/config"
	"github.com/jcmturner/gokrb5/v8/credentials"
)

var ErrNoNamenode = errors.New("cannot find Namenode to connect to")

func ConnectToNamenode(cfg config.HDFS) (*hdfs.Client, error) {
	conf, err := loadHadoopConf(cfg)
	if err != nil {
		return nil, err
	}

	options, err := clientOptions(cfg, conf)
	if err != nil {
		return nil, err
	}

	client, err := hdfs.NewClient(options)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to namenode: %s", err)
	}
	return client, nil
}

// loadHadoopConf points HADOOP_HOME at cfg.HadoopHome when neither
// HADOOP_HOME nor HADOOP_CONF_DIR is set, so a stock /etc/hadoop install
// works without extra environment.
func loadHadoopConf(cfg config.HDFS) (hadoopconf.HadoopConf, error) {
	if os.Getenv("HADOOP_HOME") == "" && os.Getenv("HADOOP_CONF_DIR") == "" && cfg.HadoopHome != "" {
		if err := os.Setenv("HADOOP_HOME", cfg.HadoopHome); err != nil {
			return nil, fmt.Errorf("error setting HADOOP_HOME: %w", err)
		}
	}
	return hadoopconf.LoadFromEnvironment()
}

func clientOptions(cfg config.HDFS, conf hadoopconf.HadoopConf) (hdfs.ClientOptions, error) {
	options := hdfs.ClientOptionsFromConf(conf)

	namenode := cfg.Namenode
	if namenode == "" {
		namenode = os.Getenv("HADOOP_NAMENODE")
	}
	if namenode != "" {
		options.Addresses = []string{namenode}
	}
	if len(options.Addresses) == 0 {
		return options, ErrNoNamenode
	}

	if options.KerberosClient != nil || cfg.Kerberos {
		kc, err := getKerberosClient(cfg)
		if err != nil {
			return options, fmt.Errorf("problem with kerberos auth: %s", err)
		}
		options.KerberosClient = kc
		if options.KerberosServicePrincipleName == "" {
			options.KerberosServicePrincipleName = "nn/_HOST"
		}
	} else {
		options.User = cfg.User
		if options.User == "" {
			options.User = os.Getenv("HADOOP_USER_NAME")
		}
		if options.User == "" {
			u, err := user.Current()
			if err != nil {
				return options, fmt.Errorf("unable to determine user: %s", err)
			}
			options.User = u.Username
		}
	}

	dialFunc := (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 5 * time.Second,
	}).DialContext

	options.NamenodeDialFunc = dialFunc
	options.DatanodeDialFunc = dialFunc

	return options, nil
}

func getKerberosClient(cfg config.HDFS) (*krb.Client, error) {
	confPath := cfg.KrbConfig
	if env := os.Getenv("KRB5_CONFIG"); confPath == "" && env != "" {
		confPath = env
	}
	if confPath == "" {
		confPath = "/etc/krb5.conf"
	}

	kcfg, err := krbconfig.Load(confPath)
	if err != nil {
		return nil, err
	}

	ccachePath := cfg.KrbCCache
	if ccachePath == "" {
		ccachePath = os.Getenv("KRB5CCNAME")
	}
	if strings.Contains(ccachePath, ":") {
		if strings.HasPrefix(ccachePath, "FILE:") {
			ccachePath = strings.SplitN(ccachePath, ":", 2)[1]
		} else {
			return nil, fmt.Errorf("unusable ccache: %s", ccachePath)
		}
	} else if ccachePath == "" {
		u, err := user.Current()
		if err != nil {
			return nil, err
		}

		ccachePath = fmt.Sprintf("/tmp/krb5cc_%s", u.Uid)
	}

	ccache, err := credentials.LoadCCache(ccachePath)
	if err != nil {
		return nil, err
	}

	return krb.NewFromCCache(ccache, kcfg)
}
